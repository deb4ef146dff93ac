package source

import (
	"image"

	"github.com/disintegration/imaging"

	"framefx/pkg/effect"
)

// Clip is an ordered run of frames already fitted to the canvas.
type Clip interface {
	Name() string
	Len() int
	// Frame returns a fresh copy of frame i, safe to mutate.
	Frame(i int) (*effect.Frame, error)
}

// Fit centre-crops img to fill w x h. A non-positive size keeps the source
// dimensions.
func Fit(img image.Image, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return imaging.Clone(img)
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

func newMemClip(name string, frames []image.Image, w, h int) *memClip {
	c := &memClip{name: name}
	for _, f := range frames {
		c.frames = append(c.frames, Fit(f, w, h))
	}
	return c
}

type memClip struct {
	name   string
	frames []*image.NRGBA
}

func (c *memClip) Name() string {
	return c.name
}

func (c *memClip) Len() int {
	return len(c.frames)
}

func (c *memClip) Frame(i int) (*effect.Frame, error) {
	if i < 0 || i >= len(c.frames) {
		return nil, ErrNoFrames
	}
	return effect.FromImage(c.frames[i]).Clone(), nil
}
