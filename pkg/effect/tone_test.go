package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdBinary(t *testing.T) {
	f := noiseFrame(32, 16, 11)
	src := f.Clone()

	sequential().Apply(f, "threshold", Params{"t": 90})

	for i := 0; i < len(f.Pix); i += 4 {
		v := f.Pix[i]
		assert.Contains(t, []byte{0, 255}, v)
		assert.Equal(t, v, f.Pix[i+1])
		assert.Equal(t, v, f.Pix[i+2])
		assert.Equal(t, src.Pix[i+3], f.Pix[i+3])

		l := luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		assert.Equal(t, l >= 90, v == 255)
	}
}

func TestThresholdIdempotent(t *testing.T) {
	for _, cutoff := range []float64{0, 1, 85, 128, 255} {
		once := noiseFrame(20, 20, 2)
		sequential().Apply(once, "threshold", Params{"t": cutoff})

		twice := once.Clone()
		sequential().Apply(twice, "threshold", Params{"t": cutoff})

		assert.Equal(t, once.Pix, twice.Pix, "t=%v", cutoff)
	}
}

func TestThresholdDefault(t *testing.T) {
	f := solidFrame(2, 2, [4]byte{128, 128, 128, 7})
	sequential().Apply(f, "threshold", nil)
	assert.Equal(t, [4]byte{255, 255, 255, 7}, pixel(f, 1, 1))

	f = solidFrame(2, 2, [4]byte{127, 127, 127, 7})
	sequential().Apply(f, "threshold", nil)
	assert.Equal(t, [4]byte{0, 0, 0, 7}, pixel(f, 1, 1))
}

func TestPosterizeRedExample(t *testing.T) {
	f := solidFrame(4, 4, [4]byte{255, 0, 0, 255})
	want := f.Clone()

	sequential().Apply(f, "posterize", Params{"levels": 2})
	assert.Equal(t, want.Pix, f.Pix)
}

func TestPosterizeLevels(t *testing.T) {
	for _, levels := range []float64{2, 3, 4, 15, 15.9} {
		f := noiseFrame(24, 24, 3)
		src := f.Clone()
		sequential().Apply(f, "posterize", Params{"levels": levels})

		step := 255 / (math.Floor(levels) - 1)
		for i := 0; i < len(f.Pix); i++ {
			if i%4 == 3 {
				assert.Equal(t, src.Pix[i], f.Pix[i])
				continue
			}
			k := math.Round(float64(f.Pix[i]) / step)
			assert.InDelta(t, k*step, float64(f.Pix[i]), 0.5, "levels=%v", levels)
		}
	}
}

func TestPosterizeTwoLevelsIsBlackWhite(t *testing.T) {
	f := noiseFrame(16, 16, 4)
	sequential().Apply(f, "posterize", Params{"levels": 2})

	for i := 0; i < len(f.Pix); i++ {
		if i%4 != 3 {
			assert.Contains(t, []byte{0, 255}, f.Pix[i])
		}
	}
}

func TestPosterizeManyLevelsNearIdentity(t *testing.T) {
	f := noiseFrame(16, 16, 5)
	src := f.Clone()
	sequential().Apply(f, "posterize", Params{"levels": 256})
	assert.Equal(t, src.Pix, f.Pix)

	f = noiseFrame(16, 16, 5)
	sequential().Apply(f, "posterize", Params{"levels": 255})
	for i := range f.Pix {
		assert.InDelta(t, float64(src.Pix[i]), float64(f.Pix[i]), 1)
	}
}

func TestPosterizeClampsLevels(t *testing.T) {
	a := noiseFrame(8, 8, 6)
	b := a.Clone()

	sequential().Apply(a, "posterize", Params{"levels": -3})
	sequential().Apply(b, "posterize", Params{"levels": 2})
	assert.Equal(t, b.Pix, a.Pix)
}
