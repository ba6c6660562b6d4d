// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package reactive

import (
	"reflect"

	rasen "github.com/rasenjs/rasen-sub000"
)

// maxRounds bounds how often one change may cascade through watchers that
// set signals from their callbacks.
const maxRounds = 100

// Runtime delivers signal changes to watchers.
//
// Runtime is NOT safe for concurrent use; like the engine it lives on one
// logical thread.
type Runtime struct {
	watchers []*watcher

	batch   int
	pending bool
	running bool
	rerun   bool
}

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Batch runs fn and delivers the changes it makes once, after it returns.
// Batches nest.
func (rt *Runtime) Batch(fn func()) {
	rt.batch++
	defer func() {
		rt.batch--
		if rt.batch == 0 && rt.pending {
			rt.pending = false
			rt.run()
		}
	}()
	fn()
}

// Watchers returns the number of active watchers.
func (rt *Runtime) Watchers() int {
	return len(rt.watchers)
}

func (rt *Runtime) notify() {
	if rt.batch > 0 {
		rt.pending = true
		return
	}
	rt.run()
}

func (rt *Runtime) run() {
	if rt.running {
		rt.rerun = true
		return
	}
	rt.running = true
	defer func() { rt.running = false }()

	for round := 0; ; round++ {
		rt.rerun = false
		ws := rt.watchers
		for _, w := range ws {
			if !w.stopped {
				w.check()
			}
		}
		if !rt.rerun {
			return
		}
		if round >= maxRounds {
			rasen.Logger().Warn("reactive: change cascade did not settle", "rounds", round)
			return
		}
	}
}

func (rt *Runtime) remove(w *watcher) {
	for i, x := range rt.watchers {
		if x == w {
			rt.watchers = append(rt.watchers[:i:i], rt.watchers[i+1:]...)
			return
		}
	}
}

// Signal is an observable value. Set notifies the runtime's watchers when
// the value actually changes.
type Signal[T comparable] struct {
	rt *Runtime
	v  T
}

// NewSignal creates a signal holding v.
func NewSignal[T comparable](rt *Runtime, v T) *Signal[T] {
	return &Signal[T]{rt: rt, v: v}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	return s.v
}

// Set stores v and notifies watchers if it differs from the current value.
func (s *Signal[T]) Set(v T) {
	if v == s.v {
		return
	}
	s.v = v
	s.rt.notify()
}

// Update sets the value to fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.v))
}

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	immediate bool
}

// Immediate makes Watch call onChange once synchronously, before returning.
func Immediate() WatchOption {
	return func(o *watchOptions) {
		o.immediate = true
	}
}

type watcher struct {
	deps     func() []any
	onChange func()
	prev     []any
	stopped  bool
}

func (w *watcher) check() {
	cur := w.deps()
	if !changed(w.prev, cur) {
		return
	}
	w.prev = cur
	w.onChange()
}

// Watch calls onChange whenever a value returned by deps changes after a
// signal update. Values are compared with == when comparable and with
// reflect.DeepEqual otherwise, so pointers compare by reference. A struct
// whose interface fields hold slices or maps falls back to DeepEqual.
//
// The returned stop function unsubscribes; it is idempotent.
func Watch(rt *Runtime, deps func() []any, onChange func(), opts ...WatchOption) (stop func()) {
	var o watchOptions
	for _, opt := range opts {
		opt(&o)
	}

	w := &watcher{deps: deps, onChange: onChange, prev: deps()}
	rt.watchers = append(rt.watchers, w)

	if o.immediate {
		onChange()
	}
	return func() {
		if w.stopped {
			return
		}
		w.stopped = true
		rt.remove(w)
	}
}

func changed(prev, cur []any) bool {
	if len(prev) != len(cur) {
		return true
	}
	for i := range prev {
		a, b := prev[i], cur[i]
		if a == nil || b == nil {
			if a != b {
				return true
			}
			continue
		}
		ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
		if ta != tb {
			return true
		}
		// Value.Comparable looks through interface fields, so == cannot
		// panic on a struct holding a slice.
		if reflect.ValueOf(a).Comparable() {
			if a != b {
				return true
			}
			continue
		}
		if !reflect.DeepEqual(a, b) {
			return true
		}
	}
	return false
}
