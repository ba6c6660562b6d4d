// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"sync"
)

// Token identifies one scheduled callback. The zero Token is never issued.
type Token uint64

// Scheduler arranges for a callback to run later on the owning goroutine.
//
// Schedule must not run fn synchronously. Cancel prevents a callback that
// has not fired yet from running; cancelling an already fired or unknown
// token is a no-op.
type Scheduler interface {
	Schedule(fn func()) Token
	Cancel(tok Token)
}

type task struct {
	tok Token
	fn  func()
}

// Loop is a cooperative run loop with two queues: microtasks, which run at
// the end of the current turn, and frame callbacks, which run once per Tick.
//
// Queueing and cancellation are safe from any goroutine. Callbacks always
// run on the goroutine that calls RunMicrotasks or Tick, which is the single
// logical thread the rendering engine relies on.
type Loop struct {
	mu     sync.Mutex
	next   Token
	micro  []task
	frames []task
	live   map[Token]struct{}
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{live: make(map[Token]struct{})}
}

var defaultLoop = NewLoop()

// Default returns the process-wide loop used when an engine is created
// without an explicit scheduler. Hosts drain it with RunMicrotasks at the end
// of each turn, or pump it with a Ticker.
func Default() *Loop {
	return defaultLoop
}

func (l *Loop) enqueue(q *[]task, fn func()) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	tok := l.next
	*q = append(*q, task{tok: tok, fn: fn})
	l.live[tok] = struct{}{}
	return tok
}

// Post queues fn as a microtask.
func (l *Loop) Post(fn func()) Token {
	return l.enqueue(&l.micro, fn)
}

// RequestFrame queues fn for the next Tick.
func (l *Loop) RequestFrame(fn func()) Token {
	return l.enqueue(&l.frames, fn)
}

// Cancel drops a queued microtask or frame callback.
func (l *Loop) Cancel(tok Token) {
	l.mu.Lock()
	delete(l.live, tok)
	l.mu.Unlock()
}

// Pending returns the number of callbacks that are queued and not cancelled.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// claim marks tok as fired. It reports false for cancelled tokens.
func (l *Loop) claim(tok Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.live[tok]; !ok {
		return false
	}
	delete(l.live, tok)
	return true
}

// RunMicrotasks runs queued microtasks until the queue is empty, including
// microtasks posted by the ones running. It returns how many ran.
func (l *Loop) RunMicrotasks() int {
	ran := 0
	for {
		l.mu.Lock()
		if len(l.micro) == 0 {
			l.micro = nil
			l.mu.Unlock()
			return ran
		}
		t := l.micro[0]
		l.micro = l.micro[1:]
		l.mu.Unlock()

		if l.claim(t.tok) {
			t.fn()
			ran++
		}
	}
}

// Tick runs one frame: pending microtasks, then every frame callback that was
// requested before the tick started, then the microtasks those produced.
// Frame callbacks requested during the tick wait for the next one.
func (l *Loop) Tick() int {
	ran := l.RunMicrotasks()

	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, t := range frames {
		if l.claim(t.tok) {
			t.fn()
			ran++
		}
		ran += l.RunMicrotasks()
	}
	return ran + l.RunMicrotasks()
}

// Microtasks returns a Scheduler that posts microtasks on l.
func (l *Loop) Microtasks() Scheduler {
	return microScheduler{l}
}

// Frames returns a Scheduler that requests frame callbacks on l.
func (l *Loop) Frames() Scheduler {
	return frameScheduler{l}
}

type microScheduler struct{ l *Loop }

func (s microScheduler) Schedule(fn func()) Token { return s.l.Post(fn) }
func (s microScheduler) Cancel(tok Token)         { s.l.Cancel(tok) }

type frameScheduler struct{ l *Loop }

func (s frameScheduler) Schedule(fn func()) Token { return s.l.RequestFrame(fn) }
func (s frameScheduler) Cancel(tok Token)         { s.l.Cancel(tok) }
