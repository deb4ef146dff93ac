package mixer

import (
	"go.uber.org/zap"
)

type Option func(d *Drawer)

// WithTransfer sets the transfers one is sampled from per frame.
func WithTransfer(t ...Transfer) Option {
	return func(d *Drawer) {
		if len(t) > 0 {
			d.effs = t
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(d *Drawer) {
		d.log = log.With(zap.String("via", "mixer"))
	}
}
