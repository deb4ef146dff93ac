package player

import (
	"time"
)

type Option func(p *Player)

// WithFPS sets the frame interval of clips. Non-positive values are ignored.
func WithFPS(fps float64) Option {
	return func(p *Player) {
		if fps > 0 {
			p.interval = time.Duration(float64(time.Second) / fps)
		}
	}
}

// WithHold sets how long a single-image entry stays on screen.
func WithHold(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.hold = d
		}
	}
}

func WithErrorWait(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.errorWait = d
		}
	}
}
