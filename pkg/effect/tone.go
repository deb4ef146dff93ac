package effect

import (
	"math"
)

func luma(r, g, b byte) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// toByte rounds to the nearest integer and saturates to a channel value.
func toByte(v float64) byte {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return byte(math.RoundToEven(v))
}

func (e *Engine) threshold(f *Frame, p Params) {
	t := p.float("t", 128)

	e.bands(f.Height, 1, func(y0, y1 int) {
		pix := f.Pix[f.offset(0, y0):f.offset(0, y1)]
		for i := 0; i < len(pix); i += 4 {
			var v byte
			if luma(pix[i], pix[i+1], pix[i+2]) >= t {
				v = 255
			}
			pix[i], pix[i+1], pix[i+2] = v, v, v
		}
	})
}

func (e *Engine) posterize(f *Frame, p Params) {
	levels := p.floor("levels", 4, 2)
	step := 255 / float64(levels-1)

	var table [256]byte
	for i := range table {
		table[i] = toByte(math.Round(float64(i)/step) * step)
	}

	e.bands(f.Height, 1, func(y0, y1 int) {
		pix := f.Pix[f.offset(0, y0):f.offset(0, y1)]
		for i := 0; i < len(pix); i += 4 {
			pix[i] = table[pix[i]]
			pix[i+1] = table[pix[i+1]]
			pix[i+2] = table[pix[i+2]]
		}
	})
}
