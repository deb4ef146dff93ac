package effect

import (
	"go.uber.org/zap"
)

type Option func(e *Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log.With(zap.String("via", "effect-engine"))
		}
	}
}

// WithWorkers bounds the goroutines used per frame. 1 keeps everything on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}
