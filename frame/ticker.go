// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidRate is returned by NewTicker for a non-positive frame rate.
var ErrInvalidRate = errors.New("frame: frame rate must be positive")

// Ticker pumps a Loop at a fixed rate for hosts that have no vsync callback
// of their own.
type Ticker struct {
	loop     *Loop
	interval time.Duration
	onTick   func(n int)
}

// NewTicker creates a ticker that calls loop.Tick fps times per second.
func NewTicker(loop *Loop, fps int) (*Ticker, error) {
	if fps <= 0 {
		return nil, ErrInvalidRate
	}
	return &Ticker{loop: loop, interval: time.Second / time.Duration(fps)}, nil
}

// OnTick registers fn to run after every tick with the frame number,
// starting at 1. It runs on the Run goroutine.
func (t *Ticker) OnTick(fn func(n int)) {
	t.onTick = fn
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run ticks the loop until ctx is done and returns ctx.Err().
// Every callback runs on the calling goroutine.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			t.loop.Tick()
			n++
			if t.onTick != nil {
				t.onTick(n)
			}
		}
	}
}
