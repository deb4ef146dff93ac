package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundEyesDeterministic(t *testing.T) {
	p := Params{"cols": 20, "rows": 20, "offset": 1, "lens": 0.4, "jitter": 0, "seed": 11}

	a := noiseFrame(64, 48, 9)
	b := a.Clone()

	New().Apply(a, "compoundEyes", p)
	New().Apply(b, "compoundEyes", p)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestCompoundEyesSeedChangesOutput(t *testing.T) {
	a := gradientFrame(96, 96)
	b := a.Clone()

	sequential().Apply(a, "compoundEyes", Params{"seed": 1, "jitter": 3})
	sequential().Apply(b, "compoundEyes", Params{"seed": 2, "jitter": 3})
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestCompoundEyesSamplesOnlySourcePixels(t *testing.T) {
	f := gradientFrame(50, 40)
	sequential().Apply(f, "compoundEyes", Params{"lens": 3, "offset": 30, "jitter": 10})

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			px := pixel(f, x, y)
			assert.Less(t, int(px[0]), 50)
			assert.Less(t, int(px[1]), 40)
			assert.Equal(t, px[0]^px[1], px[2])
			assert.Equal(t, byte(255), px[3])
		}
	}
}

func TestCompoundEyesNeutralIsIdentity(t *testing.T) {
	f := noiseFrame(30, 30, 4)
	src := f.Clone()

	sequential().Apply(f, "compoundEyes", Params{"offset": 0, "jitter": 0, "lens": 0})
	assert.Equal(t, src.Pix, f.Pix)
}

func TestCompoundEyesCellTable(t *testing.T) {
	e := newEyes(20, 10, Params{"cols": 3, "rows": 2, "offset": 0, "jitter": 1, "seed": 1})

	require.Len(t, e.cols, 3)
	require.Len(t, e.rows, 2)
	assert.Equal(t, 6, e.cw)
	assert.Equal(t, 5, e.ch)
	assert.Equal(t, span{lo: 12, hi: 20, center: 16}, e.cols[2], "last column absorbs the remainder")
	assert.Equal(t, span{lo: 0, hi: 5, center: 2}, e.rows[0])

	rnd := newLCG(1)
	jx := rnd.next()*2 - 1
	jy := rnd.next()*2 - 1
	assert.Equal(t, [2]float64{jx, jy}, e.off[0])
	assert.Equal(t, 0, e.colAt(5))
	assert.Equal(t, 1, e.colAt(6))
	assert.Equal(t, 2, e.colAt(19))
	assert.Equal(t, 1, e.rowAt(9))
}

func TestCompoundEyesRadialOffset(t *testing.T) {
	e := newEyes(100, 100, Params{"cols": 2, "rows": 2, "offset": 4, "jitter": 0})

	// cell (0,0) centre (25,25) points away from (50,50)
	d := 4 / math.Sqrt2
	assert.InDelta(t, -d, e.off[0][0], 1e-9)
	assert.InDelta(t, -d, e.off[0][1], 1e-9)
	assert.InDelta(t, d, e.off[3][0], 1e-9)
	assert.InDelta(t, d, e.off[3][1], 1e-9)
}

func TestCompoundEyesMoreCellsThanPixels(t *testing.T) {
	e := newEyes(4, 3, Params{"cols": 10, "rows": 1e12, "offset": 0, "jitter": 2})

	assert.Len(t, e.cols, 4)
	assert.Len(t, e.rows, 3)

	// the second row starts after the draws of six empty cells
	rnd := newLCG(1)
	rnd.skip(2 * 10)
	want := (rnd.next()*2 - 1) * 2
	assert.Equal(t, want, e.off[4][0])

	f := noiseFrame(4, 3, 2)
	New().Apply(f, "compoundEyes", Params{"cols": 10, "rows": 1e12})
}
