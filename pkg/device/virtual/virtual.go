package virtual

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"framefx/pkg/proto"
)

func New(w, h int, logger *zap.Logger, opts ...Option) *Display {
	d := &Display{
		l:      logger.With(zap.String("device", "virtual")),
		canvas: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Mock returns a display that only logs, the shape the device flag expects.
func Mock(logger *zap.Logger) proto.Control {
	return New(0, 0, logger)
}

// Display keeps the pushed frames in memory, and optionally writes every
// presented canvas as a PNG.
type Display struct {
	mu     sync.Mutex
	l      *zap.Logger
	canvas *image.NRGBA
	fs     afero.Fs
	draws  int
	shown  int
	dumps  []string

	light     uint8
	mirror    bool
	landscape bool
	invert    bool
	running   bool
}

func (d *Display) Startup() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = true
	d.l.Info("startup")
	return nil
}

func (d *Display) Shutdown() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	d.l.Info("shutdown")
	return nil
}

func (d *Display) Restart() error {
	d.l.Info("restart")
	return nil
}

func (d *Display) SetLight(light uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.light = light
	d.l.With(zap.Uint8("light", light)).Info("set-light")
	return nil
}

func (d *Display) SetMirror(mirror bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mirror = mirror
	d.l.With(zap.Bool("mirror", mirror)).Info("set-mirror")
	return nil
}

func (d *Display) SetRotate(landscape bool, invert bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if landscape != d.landscape {
		b := d.canvas.Bounds()
		d.canvas = image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	}
	d.landscape, d.invert = landscape, invert

	d.l.With(zap.Bool("landscape", landscape), zap.Bool("invert", invert)).Info("set-rotate")
	return nil
}

func (d *Display) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b := image.Bounds()
	at := b.Sub(b.Min).Add(imagePoint(posX, posY))
	draw.Draw(d.canvas, at, image, b.Min, draw.Src)
	d.draws++

	d.l.With(
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("draw-bitmap")
	return nil
}

// Present marks the end of a frame; with a dump fs the canvas is saved.
func (d *Display) Present() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.shown++
	if d.fs == nil || d.canvas.Rect.Empty() {
		return nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, d.canvas, imaging.PNG); err != nil {
		return errors.Wrap(err, "encode dump")
	}

	name := fmt.Sprintf("%06d-%s.png", d.shown, xid.New().String())
	if err := afero.WriteFile(d.fs, name, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write dump %s", name)
	}

	d.dumps = append(d.dumps, name)
	d.l.With(zap.String("file", name)).Debug("dumped")
	return nil
}

// Canvas returns a copy of what the display currently shows.
func (d *Display) Canvas() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := image.NewNRGBA(d.canvas.Rect)
	copy(c.Pix, d.canvas.Pix)
	return c
}

// Stats reports bitmap writes and presented frames.
func (d *Display) Stats() (draws, shown int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draws, d.shown
}

func (d *Display) Dumps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dumps...)
}

func imagePoint(x, y uint16) image.Point {
	return image.Pt(int(x), int(y))
}
