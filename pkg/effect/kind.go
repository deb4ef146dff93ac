package effect

import (
	"github.com/samber/lo"
)

type Kind int

const (
	Threshold Kind = iota
	Posterize
	Sobel
	Pixelate
	CompoundEyes
	VideoGrid
)

// Descriptor is the immutable registration of one effect.
type Descriptor struct {
	Kind     Kind
	Name     string
	Defaults Params
}

var descriptors = [...]Descriptor{
	Threshold: {Threshold, "threshold", Params{"t": 128}},
	Posterize: {Posterize, "posterize", Params{"levels": 4}},
	Sobel:     {Sobel, "sobel", Params{"edge": 1.0}},
	Pixelate:  {Pixelate, "pixelate", Params{"size": 8}},
	CompoundEyes: {CompoundEyes, "compoundEyes", Params{
		"cols":   6,
		"rows":   6,
		"offset": 4,
		"jitter": 1.5,
		"lens":   0.18,
		"seed":   1,
	}},
	VideoGrid: {VideoGrid, "videoGrid", Params{"cols": 3, "rows": 3}},
}

var byName = lo.Associate(descriptors[:], func(d Descriptor) (string, Kind) {
	return d.Name, d.Kind
})

// ParseKind resolves a case-sensitive effect name.
func ParseKind(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

func (k Kind) Valid() bool {
	return k >= Threshold && k <= VideoGrid
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return descriptors[k].Name
}

// Defaults returns a copy of the default parameters of k.
func (k Kind) Defaults() Params {
	if !k.Valid() {
		return Params{}
	}
	return descriptors[k].Defaults.Clone()
}

// Names lists every effect name in registration order.
func Names() []string {
	return lo.Map(descriptors[:], func(d Descriptor, _ int) string {
		return d.Name
	})
}

// Describe returns the descriptor registered under name.
func Describe(name string) (Descriptor, bool) {
	k, ok := ParseKind(name)
	if !ok {
		return Descriptor{}, false
	}
	d := descriptors[k]
	d.Defaults = d.Defaults.Clone()
	return d, true
}
