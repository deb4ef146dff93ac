package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"framefx/pkg/effect"
	"framefx/pkg/playlist"
	"framefx/pkg/source"
)

// Opener resolves a playlist source into frames.
type Opener interface {
	Open(ref string) (source.Clip, error)
}

// Renderer runs an effect over a frame and shows it.
type Renderer interface {
	Render(f *effect.Frame, name string, params effect.Params) error
}

func New(cursor *playlist.Cursor, opener Opener, renderer Renderer, logger *zap.Logger, opts ...Option) *Player {
	p := &Player{
		cursor:    cursor,
		opener:    opener,
		renderer:  renderer,
		log:       logger.With(zap.String("via", "player")),
		interval:  time.Second / 12,
		hold:      5 * time.Second,
		errorWait: 3 * time.Second,
		wakeup:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Player steps through the playlist one frame per tick.
type Player struct {
	l sync.Mutex

	cursor   *playlist.Cursor
	opener   Opener
	renderer Renderer
	log      *zap.Logger

	interval  time.Duration
	hold      time.Duration
	errorWait time.Duration

	wakeup chan struct{}
	paused bool
	clip   source.Clip
	frame  int
	shown  int
}

type Status struct {
	Index  int
	Entry  playlist.Entry
	Frame  int
	Frames int
	Paused bool
	Shown  int
}

func (s Status) String() string {
	state := "playing"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s #%d %s [%s] frame %d/%d", state, s.Index, s.Entry.Source, s.Entry.Effect, s.Frame, s.Frames)
}

func (p *Player) Status() Status {
	p.l.Lock()
	defer p.l.Unlock()

	s := Status{
		Index:  p.cursor.Index(),
		Entry:  p.cursor.Curr(),
		Frame:  p.frame,
		Paused: p.paused,
		Shown:  p.shown,
	}
	if p.clip != nil {
		s.Frames = p.clip.Len()
	}
	return s
}

func (p *Player) Paused() bool {
	p.l.Lock()
	defer p.l.Unlock()
	return p.paused
}

func (p *Player) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

func (p *Player) Resume() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()
	p.Wakeup()
}

// Toggle flips between playing and paused and reports the new state.
func (p *Player) Toggle() (paused bool) {
	p.l.Lock()
	p.paused = !p.paused
	paused = p.paused
	p.l.Unlock()

	if !paused {
		p.Wakeup()
	}
	return paused
}

// Next restarts playback at the following entry.
func (p *Player) Next() playlist.Entry {
	return p.jump(p.cursor.Next)
}

// Prev restarts playback at the preceding entry.
func (p *Player) Prev() playlist.Entry {
	return p.jump(p.cursor.Prev)
}

func (p *Player) jump(move func() playlist.Entry) playlist.Entry {
	p.l.Lock()
	e := move()
	p.clip, p.frame = nil, 0
	p.l.Unlock()

	p.Wakeup()
	return e
}

// Wakeup makes the loop draw at once instead of waiting for its timer.
func (p *Player) Wakeup() {
	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

// Run plays until ctx is done.
func (p *Player) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Nanosecond)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.wakeup:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(time.Millisecond)
		case <-timer.C:
			if p.Paused() {
				p.log.Debug("paused, skip")
				continue
			}
			wait, err := p.Step()
			if err != nil {
				p.log.With(zap.Error(err)).Info("drawing failed")
				wait = p.errorWait
			}
			timer.Reset(wait)
		}
	}
}

// Step draws the next frame of the current entry, advancing to the next
// entry when the clip is over. It returns how long the frame stays up.
func (p *Player) Step() (time.Duration, error) {
	p.l.Lock()
	defer p.l.Unlock()

	entry := p.cursor.Curr()

	if p.clip == nil {
		clip, err := p.opener.Open(entry.Source)
		if err != nil {
			// a broken entry must not stall the show
			p.cursor.Next()
			return 0, errors.Wrapf(err, "open %s", entry.Source)
		}
		p.clip, p.frame = clip, 0
	}

	f, err := p.clip.Frame(p.frame)
	if err != nil {
		idx := p.frame
		p.advance()
		return 0, errors.Wrapf(err, "frame %d of %s", idx, entry.Source)
	}

	if err := p.renderer.Render(f, entry.Effect, entry.Params); err != nil {
		return 0, errors.Wrapf(err, "render %s", entry.Source)
	}
	p.shown++

	wait := p.interval
	if p.clip.Len() == 1 {
		wait = p.hold
	}

	p.frame++
	if p.frame >= p.clip.Len() {
		p.advance()
	}

	return wait, nil
}

func (p *Player) advance() {
	p.cursor.Next()
	p.clip, p.frame = nil, 0
}
