package system

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/zeusync/behave/internal/core/observability/log"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// command is claimed exactly once: by drainCommands to run it, or by Do to
// abandon it when its context ends first.
type command struct {
	fn      func(*World) error
	done    chan error
	claimed atomic.Bool
}

// Do runs fn on the simulation goroutine at the start of the next step and
// waits for its result. It is the only World method safe to call from other
// goroutines. If ctx ends before fn has started, fn never runs; once fn has
// started, Do waits for it to finish and returns its result.
func (w *World) Do(ctx context.Context, fn func(*World) error) error {
	cmd := &command{fn: fn, done: make(chan error, 1)}
	select {
	case w.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		if cmd.claimed.CompareAndSwap(false, true) {
			return ctx.Err()
		}
		return <-cmd.done
	}
}

func (w *World) drainCommands() {
	for {
		select {
		case cmd := <-w.commands:
			if !cmd.claimed.CompareAndSwap(false, true) {
				continue
			}
			cmd.done <- cmd.fn(w)
		default:
			return
		}
	}
}

// Run steps the world tickRate times per second until ctx is done. The delta
// passed to Step is the measured wall time, capped at maxDelta when positive.
func (w *World) Run(ctx context.Context, tickRate int, maxDelta time.Duration) error {
	if tickRate <= 0 {
		return ErrInvalidTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	w.log.Info("world loop started", log.Int("tick_rate", tickRate))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			w.log.Info("world loop stopped", log.Uint64("ticks", w.tick))
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if maxDelta > 0 && delta > maxDelta {
				delta = maxDelta
			}
			dt := delta.Seconds()
			w.HandleInput(w.devices, dt)
			w.Step(dt)
		}
	}
}
