package mixer

import (
	"image"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"framefx/pkg/effect"
	"framefx/pkg/proto"
)

func NewDrawer(dst proto.Control, eng *effect.Engine, opts ...Option) *Drawer {
	d := &Drawer{
		dev:  dst,
		eng:  eng,
		log:  zap.NewNop(),
		effs: []Transfer{Full()},
	}

	if d.eng == nil {
		d.eng = effect.New()
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Drawer applies an effect to a frame and pushes the result to a display.
type Drawer struct {
	sync.Mutex
	dev  proto.Control
	eng  *effect.Engine
	log  *zap.Logger
	effs []Transfer
}

// Render runs the named effect over f in place and shows it. An unknown
// effect name shows the frame unmodified.
func (d *Drawer) Render(f *effect.Frame, name string, params effect.Params) error {
	if !f.Valid() {
		return effect.ErrInvalidFrame
	}

	d.eng.Apply(f, name, params)
	return d.Canvas(f.Image())
}

// Canvas transfers img to the display as it is.
func (d *Drawer) Canvas(img image.Image) error {
	d.Lock()
	defer d.Unlock()

	tr := lo.Sample(d.effs)
	sub, ok := img.(Image)
	if tr == nil || !ok {
		if err := d.dev.DrawBitmap(0, 0, img); err != nil {
			return errors.Wrap(err, "draw bitmap")
		}
		return d.present()
	}

	origin := img.Bounds().Min
	ws, err := tr.Process(sub)
	if err != nil {
		return errors.Wrapf(err, "%s transfer", tr.Name())
	}

	var drawErr error
	var writes int
	for w := range ws {
		if drawErr != nil {
			continue // drain so the producer can finish
		}
		at := w.At.Sub(origin)
		drawErr = d.dev.DrawBitmap(uint16(at.X), uint16(at.Y), w.Img)
		writes++
	}
	if drawErr != nil {
		return errors.Wrap(drawErr, "draw bitmap")
	}

	d.log.With(zap.String("transfer", tr.Name()), zap.Int("writes", writes)).Debug("canvas")

	return d.present()
}

func (d *Drawer) present() error {
	if p, ok := d.dev.(Presenter); ok {
		return p.Present()
	}
	return nil
}
