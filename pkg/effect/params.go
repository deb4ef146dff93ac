package effect

import (
	"math"

	"github.com/samber/lo"
)

// Params maps a parameter name to its value. A missing key falls back to the
// effect default.
type Params map[string]float64

// Merge returns a new set with p laid over defaults. Neither input is modified.
func (p Params) Merge(defaults Params) Params {
	return lo.Assign(map[string]float64(defaults), map[string]float64(p))
}

func (p Params) Clone() Params {
	return lo.Assign(map[string]float64(p))
}

// float reads key, treating NaN as absent.
func (p Params) float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok || math.IsNaN(v) {
		return def
	}
	return v
}

// floor reads key as an integer floored toward negative infinity and clamped
// to min.
func (p Params) floor(key string, def float64, min int) int {
	v := math.Floor(p.float(key, def))
	if math.IsInf(v, 1) || v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < float64(min) {
		return min
	}
	return int(v)
}
