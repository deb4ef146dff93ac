package player

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	tele "gopkg.in/telebot.v3"

	"framefx/pkg/effect"
	"framefx/pkg/proto"
)

func NewBot(token string, dev proto.Control, p *Player, opts ...BotOption) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(&pref)
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:     b,
		dev:   dev,
		p:     p,
		light: 50,
	}, nil
}

// Bot drives a Player from telegram chat commands.
type Bot struct {
	b     *tele.Bot
	dev   proto.Control
	p     *Player
	light uint8
}

type BotOption func(s *tele.Settings)

// Offline skips the getMe handshake.
func Offline() BotOption {
	return func(s *tele.Settings) {
		s.Offline = true
	}
}

// lightLevel maps a brightness percentage to the panel's inverted scale.
func lightLevel(percent uint8) uint8 {
	return uint8((1 - float64(lo.Clamp(percent, 0, 100))/100) * 255)
}

// commands maps each chat command to its handler, taking the message payload
// and returning the reply.
func (b *Bot) commands() map[string]func(payload string) string {
	return map[string]func(string) string{
		"/open": func(string) string {
			if err := b.dev.Startup(); err != nil {
				return fmt.Sprintf("open failed: %s", err)
			}
			b.p.Resume()
			return "OK"
		},
		"/close": func(string) string {
			if err := b.dev.Shutdown(); err != nil {
				return fmt.Sprintf("close failed: %s", err)
			}
			b.p.Pause()
			return "OK"
		},
		"/pause": func(string) string {
			b.p.Pause()
			return "OK"
		},
		"/resume": func(string) string {
			b.p.Resume()
			return "OK"
		},
		"/toggle": func(string) string {
			return lo.Ternary(b.p.Toggle(), "paused", "playing")
		},
		"/next": func(string) string {
			return b.p.Next().Source
		},
		"/prev": func(string) string {
			return b.p.Prev().Source
		},
		"/status": func(string) string {
			return b.p.Status().String()
		},
		"/effects": func(string) string {
			lines := lo.Map(effect.Names(), func(name string, _ int) string {
				d, _ := effect.Describe(name)
				keys := lo.Keys(d.Defaults)
				sort.Strings(keys)
				return fmt.Sprintf("%s: %s", name, strings.Join(keys, ", "))
			})
			return strings.Join(lines, "\n")
		},
		"/light": func(in string) string {
			if in == "" {
				return strconv.Itoa(int(b.light))
			}
			parsed, err := strconv.ParseUint(in, 10, 8)
			if err != nil {
				return fmt.Sprintf("change failed: %s", err)
			}
			if err := b.dev.SetLight(lightLevel(uint8(parsed))); err != nil {
				return fmt.Sprintf("change failed: %s", err)
			}
			b.light = uint8(parsed)
			return "OK"
		},
	}
}

func (b *Bot) Start() {
	for cmd, fn := range b.commands() {
		fn := fn
		b.b.Handle(cmd, func(c tele.Context) error {
			return c.Reply(fn(c.Message().Payload))
		})
	}
	go b.b.Start()
}

func (b *Bot) Stop() {
	// telebot blocks on Stop until the poller's next response
	go b.b.Stop()
}
