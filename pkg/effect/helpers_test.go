package effect

import (
	"math/rand"
)

// solidFrame fills a frame with one colour.
func solidFrame(w, h int, c [4]byte) *Frame {
	f := NewFrame(w, h)
	for i := 0; i < len(f.Pix); i += 4 {
		copy(f.Pix[i:i+4], c[:])
	}
	return f
}

// noiseFrame fills a frame with reproducible random bytes.
func noiseFrame(w, h int, seed int64) *Frame {
	f := NewFrame(w, h)
	r := rand.New(rand.NewSource(seed))
	r.Read(f.Pix)
	return f
}

// gradientFrame encodes the coordinates of each pixel so remaps can be
// traced back: R=x, G=y, B=x^y, A=255.
func gradientFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := f.offset(x, y)
			f.Pix[o] = byte(x)
			f.Pix[o+1] = byte(y)
			f.Pix[o+2] = byte(x ^ y)
			f.Pix[o+3] = 255
		}
	}
	return f
}

func pixel(f *Frame, x, y int) [4]byte {
	o := f.offset(x, y)
	return [4]byte{f.Pix[o], f.Pix[o+1], f.Pix[o+2], f.Pix[o+3]}
}

func sequential() *Engine {
	return New(WithWorkers(1))
}
