package effect

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minBandRows keeps bands large enough that goroutine setup stays negligible.
const minBandRows = 16

func New(opts ...Option) *Engine {
	e := &Engine{
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Engine dispatches effects by name. It holds no per-frame state and may be
// shared between goroutines working on distinct frames.
type Engine struct {
	log     *zap.Logger
	workers int
}

// Apply runs the named effect over f in place. Unknown names and invalid
// frames leave f untouched.
func (e *Engine) Apply(f *Frame, name string, p Params) {
	kind, ok := ParseKind(name)
	if !ok {
		e.log.With(zap.String("effect", name)).Debug("unknown effect, skipped")
		return
	}

	if !f.Valid() {
		e.log.With(zap.String("effect", name)).Debug("invalid frame, skipped")
		return
	}

	e.ApplyKind(f, kind, p)
}

// Run is Apply with the failures reported.
func (e *Engine) Run(f *Frame, name string, p Params) error {
	kind, ok := ParseKind(name)
	if !ok {
		return &UnknownEffectError{Name: name}
	}

	if !f.Valid() {
		return ErrInvalidFrame
	}

	e.ApplyKind(f, kind, p)
	return nil
}

func (e *Engine) ApplyKind(f *Frame, kind Kind, p Params) {
	if !kind.Valid() || !f.Valid() {
		return
	}

	merged := p.Merge(descriptors[kind].Defaults)

	switch kind {
	case Threshold:
		e.threshold(f, merged)
	case Posterize:
		e.posterize(f, merged)
	case Sobel:
		e.sobel(f, merged)
	case Pixelate:
		e.pixelate(f, merged)
	case CompoundEyes:
		e.compoundEyes(f, merged)
	case VideoGrid:
		e.videoGrid(f, merged)
	}
}

// bands calls fn over [y0,y1) row ranges covering [0,h) once each. Band
// boundaries fall on multiples of align. Returns when every band is done.
func (e *Engine) bands(h, align int, fn func(y0, y1 int)) {
	if align < 1 {
		align = 1
	}

	size := (h + e.workers - 1) / max(e.workers, 1)
	if size < minBandRows {
		size = minBandRows
	}
	size = (size + align - 1) / align * align

	if e.workers <= 1 || size >= h {
		fn(0, h)
		return
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for y := 0; y < h; y += size {
		y0, y1 := y, min(y+size, h)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
