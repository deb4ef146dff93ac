package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoGridSingleTileIsIdentity(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 9}, {37, 23}, {128, 64}} {
		f := noiseFrame(size[0], size[1], 8)
		src := f.Clone()

		New().Apply(f, "videoGrid", Params{"cols": 1, "rows": 1})
		assert.Equal(t, src.Pix, f.Pix, "%dx%d", size[0], size[1])
	}
}

func TestVideoGridTilesShowWholeFrame(t *testing.T) {
	f := gradientFrame(31, 20)
	sequential().Apply(f, "videoGrid", Params{"cols": 3, "rows": 2})

	// tile columns [0,10) [10,20) [20,31), rows [0,10) [10,20)
	for _, origin := range [][2]int{{0, 0}, {10, 0}, {20, 0}, {0, 10}, {20, 10}} {
		assert.Equal(t, [4]byte{0, 0, 0, 255}, pixel(f, origin[0], origin[1]), "tile at %v", origin)
	}
	assert.Equal(t, [4]byte{30, 19, 30 ^ 19, 255}, pixel(f, 9, 9))
	assert.Equal(t, [4]byte{30, 19, 30 ^ 19, 255}, pixel(f, 30, 19))
	assert.Equal(t, [4]byte{15, 0, 15, 255}, pixel(f, 25, 0))
}

func TestVideoGridCoverage(t *testing.T) {
	for _, n := range []int{2, 3, 7} {
		tx, ty := newTiles(23, n), newTiles(17, n)

		seen := make([]int, 23*17)
		for gy := 0; gy < n; gy++ {
			for gx := 0; gx < n; gx++ {
				x0, x1 := tileBounds(tx, gx)
				y0, y1 := tileBounds(ty, gy)
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						seen[y*23+x]++
						lx, hx := tx.at(x)
						ly, hy := ty.at(y)
						assert.Equal(t, [4]int{x0, x1, y0, y1}, [4]int{lx, hx, ly, hy})
					}
				}
			}
		}
		for i, c := range seen {
			assert.Equal(t, 1, c, "n=%d pixel %d", n, i)
		}
	}
}

func TestVideoGridMoreTilesThanPixels(t *testing.T) {
	f := noiseFrame(4, 4, 3)
	src := f.Clone()

	// zero base size leaves the last tile spanning the whole frame
	sequential().Apply(f, "videoGrid", Params{"cols": 9, "rows": 9})
	assert.Equal(t, src.Pix, f.Pix)
}

func TestVideoGridSingleRowTiles(t *testing.T) {
	f := gradientFrame(4, 3)
	sequential().Apply(f, "videoGrid", Params{"cols": 1, "rows": 3})

	// each one-pixel-high tile samples the top row
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, [4]byte{byte(x), 0, byte(x), 255}, pixel(f, x, y))
		}
	}
}

// tileBounds enumerates tile i the way the layout is defined, independent of
// the pixel lookup.
func tileBounds(t tiles, i int) (lo, hi int) {
	lo = i * t.base
	if i == t.count-1 {
		return lo, t.n
	}
	return lo, lo + t.base
}
