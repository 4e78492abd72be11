// Package runner drives the timed animation patterns against one DDP
// endpoint. Sends are strictly sequential; pacing comes from an injected
// clock so tests can run without real sleeps.
package runner

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/ledsuite/ddpcli/internal/pixel"
)

// Sender transmits one framed payload as a single datagram.
type Sender interface {
	Send(data []byte, push bool) (int, error)
}

// Config selects what a Runner animates and how fast.
type Config struct {
	LEDs       int
	Delay      time.Duration
	Iterations int
	Push       bool
}

type Runner struct {
	sender Sender
	clock  clockwork.Clock
	cfg    Config
}

// New creates a Runner. A nil clock falls back to the real clock.
func New(sender Sender, clock clockwork.Clock, cfg Config) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Runner{sender: sender, clock: clock, cfg: cfg}
}

// Chase walks a single lit pixel down the strip, one frame per delay, and
// blanks the strip at the end of every pass.
func (r *Runner) Chase(ctx context.Context) error {
	for it := 0; it < r.cfg.Iterations; it++ {
		log.Debug().Int("iteration", it+1).Int("of", r.cfg.Iterations).Msg("chase pass")
		for k := 0; k < r.cfg.LEDs; k++ {
			log.Debug().Int("led", k).Msg("lighting")
			r.send(pixel.ChaseFrame(r.cfg.LEDs, k, pixel.ChaseColor))
			if err := r.wait(ctx); err != nil {
				return err
			}
		}
		r.send(pixel.Solid(r.cfg.LEDs, pixel.Off))
		if err := r.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Cycle fills the whole strip with each palette color in declaration
// order, repeating for the configured iteration count.
func (r *Runner) Cycle(ctx context.Context) error {
	for it := 0; it < r.cfg.Iterations; it++ {
		for _, c := range pixel.Palette {
			log.Debug().Str("color", c.Name).Msg("cycle step")
			r.send(pixel.Solid(r.cfg.LEDs, c.Value))
			if err := r.wait(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// send transmits one frame. A transport error is logged and swallowed so
// an unreachable endpoint does not stop the animation.
func (r *Runner) send(f pixel.Frame) {
	n, err := r.sender.Send(f.Bytes(), r.cfg.Push)
	if err != nil {
		log.Error().Err(err).Msg("send failed")
		return
	}
	log.Debug().Int("bytes", n).Int("leds", len(f)).Msg("sent frame")
}

func (r *Runner) wait(ctx context.Context) error {
	select {
	case <-r.clock.After(r.cfg.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
