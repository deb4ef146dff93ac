package main

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"framefx/pkg/effect"
	"framefx/pkg/playlist"
	"framefx/pkg/source"
)

// Opener is satisfied by *source.Loader.
type Opener interface {
	Open(ref string) (source.Clip, error)
}

type renderer struct {
	fs       afero.Fs
	opener   Opener
	eng      *effect.Engine
	out      string
	progress io.Writer
	log      *zap.Logger
}

type summary struct {
	files int
	bytes int64
}

// render writes every frame of every entry, with its effect applied, as
// <out>/<entry>-<frame>.png.
func (r *renderer) render(entries []playlist.Entry) (summary, error) {
	var sum summary

	clips := make([]source.Clip, len(entries))
	total := 0
	for i, e := range entries {
		clip, err := r.opener.Open(e.Source)
		if err != nil {
			return sum, errors.Wrapf(err, "open %s", e.Source)
		}
		clips[i] = clip
		total += clip.Len()
	}

	if err := r.fs.MkdirAll(r.out, 0755); err != nil {
		return sum, errors.Wrap(err, "create output dir")
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
	)
	defer func() {
		_ = bar.Finish()
	}()

	for i, e := range entries {
		log := r.log.With(zap.String("source", e.Source), zap.String("effect", e.Effect))

		for j := 0; j < clips[i].Len(); j++ {
			f, err := clips[i].Frame(j)
			if err != nil {
				return sum, errors.Wrapf(err, "frame %d of %s", j, e.Source)
			}

			if err := r.eng.Run(f, e.Effect, e.Params); err != nil {
				return sum, errors.Wrapf(err, "render %s", e.Source)
			}

			var buf bytes.Buffer
			if err := imaging.Encode(&buf, f.Image(), imaging.PNG); err != nil {
				return sum, errors.Wrap(err, "encode frame")
			}

			name := path.Join(r.out, fmt.Sprintf("%03d-%04d.png", i, j))
			if err := afero.WriteFile(r.fs, name, buf.Bytes(), 0644); err != nil {
				return sum, errors.Wrapf(err, "write %s", name)
			}

			sum.files++
			sum.bytes += int64(buf.Len())
			_ = bar.Add(1)
		}

		log.With(zap.Int("frames", clips[i].Len())).Debug("entry rendered")
	}

	return sum, nil
}

// parseParams turns --param key=value pairs into effect parameters.
func parseParams(in map[string]string) (effect.Params, error) {
	p := make(effect.Params, len(in))
	for k, v := range in {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "param %s", k)
		}
		p[k] = f
	}
	return p, nil
}

// parseSize reads WIDTHxHEIGHT. An empty string means no size.
func parseSize(s string) (w, h int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, errors.Wrapf(err, "size %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}
