package effect

func (e *Engine) pixelate(f *Frame, p Params) {
	w := f.Width
	size := min(p.floor("size", 8, 1), max(w, f.Height))

	// a band never splits a tile row, so the top-left read of each tile
	// happens before any write to that tile
	e.bands(f.Height, size, func(y0, y1 int) {
		for by := y0; by < y1; by += size {
			maxY := min(by+size, y1)
			for bx := 0; bx < w; bx += size {
				maxX := min(bx+size, w)

				i0 := f.offset(bx, by)
				var c [4]byte
				copy(c[:], f.Pix[i0:i0+4])

				for y := by; y < maxY; y++ {
					row := f.Pix[f.offset(bx, y):f.offset(maxX, y)]
					for i := 0; i < len(row); i += 4 {
						copy(row[i:i+4], c[:])
					}
				}
			}
		}
	})
}
