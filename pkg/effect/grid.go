package effect

// tiles splits n pixels into count tiles of floor(n/count); the last tile
// absorbs the remainder. A zero base size leaves the whole range to the
// last tile.
type tiles struct {
	n, count, base int
}

func newTiles(n, count int) tiles {
	return tiles{n: n, count: count, base: n / count}
}

// at returns the bounds of the tile holding pixel i.
func (t tiles) at(i int) (lo, hi int) {
	if t.base == 0 {
		return (t.count - 1) * t.base, t.n
	}

	idx := min(i/t.base, t.count-1)
	lo = idx * t.base
	if idx == t.count-1 {
		return lo, t.n
	}
	return lo, lo + t.base
}

func (e *Engine) videoGrid(f *Frame, p Params) {
	w, h := f.Width, f.Height
	tx := newTiles(w, p.floor("cols", 3, 1))
	ty := newTiles(h, p.floor("rows", 3, 1))
	src := f.snapshot()

	// per-column source x, shared by every row
	sxs := make([]int, w)
	for x := range sxs {
		x0, x1 := tx.at(x)
		u := float64(x-x0) / float64(divisor(x1-x0))
		sxs[x] = clampCoord(round(u*float64(w-1)), w-1)
	}

	e.bands(h, 1, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			t0, t1 := ty.at(y)
			v := float64(y-t0) / float64(divisor(t1-t0))
			sy := clampCoord(round(v*float64(h-1)), h-1)

			for x, sx := range sxs {
				si, di := f.offset(sx, sy), f.offset(x, y)
				copy(f.Pix[di:di+4], src[si:si+4])
			}
		}
	})
}

// divisor is the normalising span of a tile, 1 for single-pixel tiles.
func divisor(size int) int {
	if size-1 < 1 {
		return 1
	}
	return size - 1
}
