package effect

import (
	"math"
)

func (e *Engine) sobel(f *Frame, p Params) {
	edge := p.float("edge", 1)
	w, h := f.Width, f.Height
	src := f.snapshot()

	gray := make([]float64, w*h)
	for i := range gray {
		gray[i] = luma(src[4*i], src[4*i+1], src[4*i+2])
	}

	e.bands(h, 1, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				o := f.offset(x, y)

				var v byte
				if x == 0 || y == 0 || x == w-1 || y == h-1 {
					v = toByte(gray[y*w+x])
				} else {
					v = toByte(gradient(gray, w, x, y) * edge)
				}

				f.Pix[o], f.Pix[o+1], f.Pix[o+2] = v, v, v
				f.Pix[o+3] = src[o+3]
			}
		}
	})
}

// gradient is the Sobel magnitude at an interior point of the luma grid.
func gradient(gray []float64, w, x, y int) float64 {
	up, mid, down := (y-1)*w+x, y*w+x, (y+1)*w+x

	gx := -gray[up-1] + gray[up+1] -
		2*gray[mid-1] + 2*gray[mid+1] -
		gray[down-1] + gray[down+1]
	gy := -gray[up-1] - 2*gray[up] - gray[up+1] +
		gray[down-1] + 2*gray[down] + gray[down+1]

	return math.Sqrt(gx*gx + gy*gy)
}
