package player

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrQuit is returned by Keys when the quit key is pressed.
var ErrQuit = errors.New("quit")

const (
	keyEsc    = 0x1b
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
	arrowNext = 'C'
	arrowPrev = 'D'
)

// Keys reads single-key commands from r until EOF, ctx is done or a quit
// key arrives. r is expected to be a terminal in raw mode.
//
//	space     toggle pause
//	n, right  next entry
//	p, left   previous entry
//	q, ^C     quit
func Keys(ctx context.Context, r io.Reader, p *Player, logger *zap.Logger) error {
	log := logger.With(zap.String("via", "keys"))
	in := bufio.NewReader(r)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read key")
		}

		if c == keyEsc {
			// arrow keys arrive as ESC [ C and ESC [ D
			if b, _ := in.ReadByte(); b != '[' {
				continue
			}
			b, _ := in.ReadByte()
			switch b {
			case arrowNext:
				c = 'n'
			case arrowPrev:
				c = 'p'
			default:
				continue
			}
		}

		switch c {
		case ' ':
			log.With(zap.Bool("paused", p.Toggle())).Debug("toggle")
		case 'n', 'N':
			log.With(zap.String("source", p.Next().Source)).Debug("next")
		case 'p', 'P':
			log.With(zap.String("source", p.Prev().Source)).Debug("prev")
		case 'q', 'Q', keyCtrlC, keyCtrlD:
			return ErrQuit
		}
	}
}
