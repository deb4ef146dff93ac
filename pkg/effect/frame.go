package effect

import (
	"image"

	"github.com/disintegration/imaging"
)

// NewFrame allocates a transparent black frame.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{
		Pix:    make([]byte, w*h*4),
		Width:  w,
		Height: h,
	}
}

// FromImage returns a frame over the pixels of img. An *image.NRGBA with a
// tight stride is wrapped without copying, anything else is converted.
func FromImage(img image.Image) *Frame {
	if n, ok := img.(*image.NRGBA); ok {
		b := n.Bounds()
		if b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
			return &Frame{Pix: n.Pix, Width: b.Dx(), Height: b.Dy()}
		}
	}

	n := imaging.Clone(img)
	return &Frame{Pix: n.Pix, Width: n.Rect.Dx(), Height: n.Rect.Dy()}
}

// Frame is an interleaved 8-bit RGBA pixel buffer, row-major from the top-left.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

func (f *Frame) Valid() bool {
	return f != nil && f.Width > 0 && f.Height > 0 && len(f.Pix) >= f.Width*f.Height*4
}

func (f *Frame) offset(x, y int) int {
	return 4 * (y*f.Width + x)
}

// Image is a view of the frame sharing its pixels.
func (f *Frame) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix[:f.Width*f.Height*4],
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func (f *Frame) Clone() *Frame {
	pix := make([]byte, f.Width*f.Height*4)
	copy(pix, f.Pix)
	return &Frame{Pix: pix, Width: f.Width, Height: f.Height}
}

// snapshot is the read-only source copy taken by neighbour-dependent effects.
func (f *Frame) snapshot() []byte {
	return f.Clone().Pix
}
