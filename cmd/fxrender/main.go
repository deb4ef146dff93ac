package main

import (
	"log"
	"os"
	"runtime"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"framefx/pkg/effect"
	"framefx/pkg/playlist"
	"framefx/pkg/source"
)

var playlistFile = flag.String("playlist", "", "playlist file (yaml or json)")
var input = flag.String("input", "", "single source to render instead of a playlist")
var effectName = flag.String("effect", "sobel", "effect applied to --input")
var params = flag.StringToString("param", nil, "effect params for --input, key=value")
var out = flag.String("out", "out", "output directory")
var size = flag.String("size", "", "canvas size WIDTHxHEIGHT, overrides the playlist")
var workers = flag.Int("workers", runtime.GOMAXPROCS(0), "effect worker count")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}

	fs := afero.NewOsFs()

	var pl *playlist.Playlist
	switch {
	case *playlistFile != "":
		var err error
		if pl, err = playlist.Load(fs, *playlistFile); err != nil {
			log.Fatal(err)
		}
	case *input != "":
		p, err := parseParams(*params)
		if err != nil {
			log.Fatal(err)
		}
		pl = &playlist.Playlist{Entries: []playlist.Entry{
			{Source: *input, Effect: *effectName, Params: p},
		}}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := pl.Validate(); err != nil {
		log.Fatal(err)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		log.Fatal(err)
	}
	if w == 0 {
		w, h = pl.Canvas.Width, pl.Canvas.Height
	}

	fetcher := source.NewHTTPFetcher(logger, true)
	loader := source.NewLoader(fs, logger,
		source.WithCanvas(w, h),
		source.WithHTTP(fetcher),
		source.WithWallhaven(source.NewWallhavenFetcher(*whKey, fetcher, logger, false)),
	)

	r := &renderer{
		fs:       fs,
		opener:   loader,
		eng:      effect.New(effect.WithLogger(logger), effect.WithWorkers(*workers)),
		out:      *out,
		progress: os.Stderr,
		log:      logger,
	}

	sum, err := r.render(pl.Entries)
	if err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.Int("files", sum.files),
		zap.String("size", bytesize.New(float64(sum.bytes)).String()),
		zap.String("out", *out),
	).Info("render done")
}
