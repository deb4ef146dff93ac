package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/term"

	"framefx/pkg/device/inch35"
	"framefx/pkg/device/remote"
	"framefx/pkg/device/virtual"
	"framefx/pkg/effect"
	"framefx/pkg/mixer"
	"framefx/pkg/player"
	"framefx/pkg/playlist"
	"framefx/pkg/proto"
	"framefx/pkg/source"
)

var playlistFile = flag.String("playlist", "playlist.yaml", "playlist file (yaml or json)")
var device = flag.String("device", "ttyACM0", "serial name, remote addr (host:port) or \"virtual\"")
var dump = flag.String("dump", "", "directory the virtual device writes frames to")
var light = flag.Uint8("light", 100, "set light")
var landscape = flag.Bool("landscape", false, "set landscape")
var invert = flag.Bool("invert", false, "set invert")
var hold = flag.Duration("hold", 5*time.Second, "how long a still stays on screen")
var blocks = flag.Int("blocks", -1, "transfer frames in shuffled blocks of this size, 0 for random sizes")
var workers = flag.Int("workers", 0, "effect worker count, 0 for all cores")
var keys = flag.Bool("keys", true, "read single-key commands from a terminal stdin")
var cache = flag.String("cache", "", "directory downloaded media is kept in")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			newLogger,
			afero.NewOsFs,
			loadPlaylist,
			openDevice,
			newLoader,
			newDrawer,
			newPlayer,
		),
		fx.Invoke(
			play,
			startBot,
			readKeys,
		),
	).Run()
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadPlaylist(fs afero.Fs) (*playlist.Playlist, error) {
	p, err := playlist.Load(fs, *playlistFile)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid playlist %s", *playlistFile)
	}
	return p, nil
}

func openDevice(fs afero.Fs, p *playlist.Playlist, logger *zap.Logger, lc fx.Lifecycle) (proto.Control, error) {
	var dev proto.Control
	var err error

	switch {
	case *device == "virtual":
		w, h := canvasSize(p)
		var opts []virtual.Option
		if *dump != "" {
			if err := fs.MkdirAll(*dump, 0755); err != nil {
				return nil, err
			}
			opts = append(opts, virtual.WithDump(afero.NewBasePathFs(fs, *dump)))
		}
		dev = virtual.New(w, h, logger, opts...)
	case strings.Contains(*device, ":"):
		dev, err = remote.New(*device)
	default:
		dev, err = inch35.New(proto.NewSerial(*device), logger)
	}
	if err != nil {
		return nil, err
	}

	if err := dev.Startup(); err != nil {
		return nil, err
	}
	if err := dev.SetLight(*light); err != nil {
		return nil, err
	}
	if err := dev.SetRotate(*landscape, *invert); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dev.Shutdown()
		},
	})

	return dev, nil
}

// canvasSize is the playlist canvas, or the panel size when none is set.
func canvasSize(p *playlist.Playlist) (w, h int) {
	w, h = p.Canvas.Width, p.Canvas.Height
	if w <= 0 || h <= 0 {
		w, h = inch35.Width, inch35.Height
		if *landscape {
			w, h = h, w
		}
	}
	return w, h
}

func newLoader(fs afero.Fs, p *playlist.Playlist, logger *zap.Logger) (*source.Loader, error) {
	fetcher := source.NewHTTPFetcher(logger, false)
	w, h := canvasSize(p)

	opts := []source.Option{
		source.WithCanvas(w, h),
		source.WithHTTP(fetcher),
		source.WithWallhaven(source.NewWallhavenFetcher(*whKey, fetcher, logger, true)),
	}
	if *cache != "" {
		if err := fs.MkdirAll(*cache, 0755); err != nil {
			return nil, errors.Wrap(err, "create cache")
		}
		opts = append(opts, source.WithCache(source.NewCache(afero.NewBasePathFs(fs, *cache))))
	}

	return source.NewLoader(fs, logger, opts...), nil
}

func newDrawer(dev proto.Control, logger *zap.Logger) *mixer.Drawer {
	opts := []effect.Option{effect.WithLogger(logger)}
	if *workers > 0 {
		opts = append(opts, effect.WithWorkers(*workers))
	}

	transfer := mixer.Full()
	if *blocks >= 0 {
		transfer = mixer.Blocks(*blocks)
	}

	return mixer.NewDrawer(dev, effect.New(opts...),
		mixer.WithTransfer(transfer),
		mixer.WithLogger(logger),
	)
}

func newPlayer(p *playlist.Playlist, loader *source.Loader, drawer *mixer.Drawer, logger *zap.Logger) *player.Player {
	return player.New(playlist.NewCursor(p), loader, drawer, logger,
		player.WithFPS(p.FPS),
		player.WithHold(*hold),
	)
}

func play(pl *player.Player, logger *zap.Logger, lc fx.Lifecycle) {
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(exited)
				_ = pl.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stop context.Context) error {
			cancel()
			select {
			case <-exited:
				logger.Info("player exited")
			case <-stop.Done():
			}
			return nil
		},
	})
}

func startBot(dev proto.Control, pl *player.Player, lc fx.Lifecycle) error {
	if *tgToken == "" {
		return nil
	}

	bot, err := player.NewBot(*tgToken, dev, pl)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			bot.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			bot.Stop()
			return nil
		},
	})
	return nil
}

func readKeys(pl *player.Player, logger *zap.Logger, sd fx.Shutdowner, lc fx.Lifecycle) {
	fd := int(os.Stdin.Fd())
	if !*keys || !term.IsTerminal(fd) {
		return
	}

	var state *term.State
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var err error
			if state, err = term.MakeRaw(fd); err != nil {
				return errors.Wrap(err, "raw terminal")
			}
			go func() {
				err := player.Keys(ctx, os.Stdin, pl, logger)
				if errors.Is(err, player.ErrQuit) {
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			if state != nil {
				return term.Restore(fd, state)
			}
			return nil
		},
	})
}
