package effect

import (
	"math"
)

const (
	lcgMul = 1664525
	lcgInc = 1013904223
)

// lcg is the per-invocation jitter generator. The state lives in the
// caller's variable, there is no shared sequence.
type lcg uint32

// newLCG seeds from a float the way an unsigned 32-bit coercion does:
// truncate, wrap modulo 2^32, and use 1 instead of 0.
func newLCG(seed float64) lcg {
	var s uint32
	if !math.IsNaN(seed) && !math.IsInf(seed, 0) {
		m := math.Mod(math.Trunc(seed), 1<<32)
		if m < 0 {
			m += 1 << 32
		}
		s = uint32(m)
	}
	if s == 0 {
		s = 1
	}
	return lcg(s)
}

// next advances the state and returns it scaled to [0,1).
func (s *lcg) next() float64 {
	*s = lcg(lcgMul*uint32(*s) + lcgInc)
	return float64(*s) / (1 << 32)
}

// skip advances the state by n draws without producing values.
func (s *lcg) skip(n uint64) {
	// compose x -> a*x + c with itself by squaring
	mul, inc := uint32(lcgMul), uint32(lcgInc)
	accMul, accInc := uint32(1), uint32(0)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			accMul, accInc = accMul*mul, accInc*mul+inc
		}
		mul, inc = mul*mul, inc*mul+inc
	}
	*s = lcg(accMul*uint32(*s) + accInc)
}
