// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"log/slog"

	"github.com/rasenjs/rasen-sub000/frame"
)

// DefaultMaxRegions is the number of pending dirty rectangles after which a
// tick gives up on region tracking and repaints the whole surface.
const DefaultMaxRegions = 64

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Region tracking on the default loop
//	eng := rasen.NewEngine(surf)
//
//	// Whole-surface repaints, driven by frame callbacks
//	eng := rasen.NewEngine(surf,
//		rasen.WithFullRedraw(),
//		rasen.WithScheduler(loop.Frames()))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	fullRedraw bool
	scheduler  frame.Scheduler
	maxRegions int
	logger     *slog.Logger
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		maxRegions: DefaultMaxRegions,
	}
}

// WithFullRedraw switches the engine from region tracking to whole-surface
// repaints. Bounds passed to MarkDirty are ignored; every flush clears the
// surface and redraws every drawable. The mode is fixed for the engine's
// lifetime.
func WithFullRedraw() Option {
	return func(o *options) {
		o.fullRedraw = true
	}
}

// WithScheduler sets the deferred-callback scheduler used to batch flushes.
// Pass loop.Frames() for frame-synchronised repaints or loop.Microtasks()
// to repaint at the end of the current turn. Defaults to
// frame.Default().Microtasks().
func WithScheduler(s frame.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithMaxRegions sets how many dirty rectangles may accumulate in one tick
// before the engine falls back to a whole-surface repaint. Values below 1
// are ignored.
func WithMaxRegions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRegions = n
		}
	}
}

// WithLogger gives the engine its own logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
