package effect

import (
	"math"
)

type span struct {
	lo, hi int // [lo, hi)
	center int
}

// eyes is the cell table of one compound-eyes pass.
type eyes struct {
	cw, ch int
	cols   []span
	rows   []span
	off    [][2]float64 // row-major, len(rows)*len(cols)
}

// cellSpans splits n pixels into count cells of size floor(n/count), at
// least 1, with the last cell running to n. Cells that start past the edge
// are left out.
func cellSpans(n, count int) (size int, spans []span) {
	size = max(1, n/count)
	for i := 0; i < count; i++ {
		lo := i * size
		if lo >= n {
			break
		}
		hi := lo + size
		if i == count-1 {
			hi = n
		}
		spans = append(spans, span{lo: lo, hi: hi, center: (lo + hi) >> 1})
	}
	return size, spans
}

func newEyes(w, h int, p Params) *eyes {
	cols := p.floor("cols", 6, 1)
	rows := p.floor("rows", 6, 1)
	offset := p.float("offset", 4)
	jitter := p.float("jitter", 1.5)
	rnd := newLCG(p.float("seed", 1))

	e := &eyes{}
	e.cw, e.cols = cellSpans(w, cols)
	e.ch, e.rows = cellSpans(h, rows)
	e.off = make([][2]float64, len(e.rows)*len(e.cols))

	cx0, cy0 := float64(w)*0.5, float64(h)*0.5
	for gy, row := range e.rows {
		for gx, col := range e.cols {
			dx, dy := float64(col.center)-cx0, float64(row.center)-cy0
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				dist = 1
			}

			jx := (rnd.next()*2 - 1) * jitter
			jy := (rnd.next()*2 - 1) * jitter

			e.off[gy*len(e.cols)+gx] = [2]float64{
				dx/dist*offset + jx,
				dy/dist*offset + jy,
			}
		}
		// cells past the right edge are empty but still consume their draws
		rnd.skip(2 * uint64(cols-len(e.cols)))
	}

	return e
}

func (e *eyes) colAt(x int) int {
	return min(x/e.cw, len(e.cols)-1)
}

func (e *eyes) rowAt(y int) int {
	return min(y/e.ch, len(e.rows)-1)
}

func (e *Engine) compoundEyes(f *Frame, p Params) {
	w, h := f.Width, f.Height
	lens := p.float("lens", 0.18)
	src := f.snapshot()
	cells := newEyes(w, h, p)

	halfW, halfH := float64(cells.cw)*0.5, float64(cells.ch)*0.5

	e.bands(h, 1, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			gy := cells.rowAt(y)
			cfy := float64(cells.rows[gy].center)
			ry := (float64(y) - cfy) / halfH

			for x := 0; x < w; x++ {
				gx := cells.colAt(x)
				cfx := float64(cells.cols[gx].center)
				off := cells.off[gy*len(cells.cols)+gx]

				rx := (float64(x) - cfx) / halfW
				scale := 1 - lens*(rx*rx+ry*ry)

				sx := clampCoord(round(cfx+(float64(x)-cfx)*scale+off[0]), w-1)
				sy := clampCoord(round(cfy+(float64(y)-cfy)*scale+off[1]), h-1)

				si, di := f.offset(sx, sy), f.offset(x, y)
				copy(f.Pix[di:di+4], src[si:si+4])
			}
		}
	})
}

// round rounds half up, so -2.5 becomes -2.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// clampCoord maps a sample coordinate into [0, hi]. NaN maps to 0.
func clampCoord(v float64, hi int) int {
	switch {
	case !(v > 0):
		return 0
	case v >= float64(hi):
		return hi
	}
	return int(v)
}
