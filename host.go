// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"fmt"
)

// Hosts associates surface handles with their engines.
//
// Whatever layer creates surfaces owns a Hosts table and passes it to code
// that needs to find the engine for a handle. There is no package-level
// table, so independent surfaces (and tests) never share state.
//
// Hosts is NOT safe for concurrent use.
type Hosts[K comparable] struct {
	engines map[K]*Engine
}

// NewHosts creates an empty table.
func NewHosts[K comparable]() *Hosts[K] {
	return &Hosts[K]{engines: make(map[K]*Engine)}
}

// Init returns the engine for handle, creating it on first use.
// Options only apply when the engine is created.
func (h *Hosts[K]) Init(handle K, s Surface, opts ...Option) (*Engine, error) {
	if e, ok := h.engines[handle]; ok {
		return e, nil
	}
	if s == nil {
		return nil, ErrNilSurface
	}
	e := NewEngine(s, opts...)
	h.engines[handle] = e
	e.log.Info("rasen: engine initialized", "handle", fmt.Sprint(handle))
	return e, nil
}

// Engine returns the engine for handle, or an error wrapping ErrNoEngine
// when Init was never called for it.
func (h *Hosts[K]) Engine(handle K) (*Engine, error) {
	e, ok := h.engines[handle]
	if !ok {
		return nil, fmt.Errorf("%w: handle %v", ErrNoEngine, handle)
	}
	return e, nil
}

// MustEngine is like Engine but panics on error.
// Use it where a missing engine is a programming mistake.
func (h *Hosts[K]) MustEngine(handle K) *Engine {
	e, err := h.Engine(handle)
	if err != nil {
		panic(err)
	}
	return e
}

// Release destroys the engine for handle and forgets it.
// Releasing an unknown handle is a no-op.
func (h *Hosts[K]) Release(handle K) {
	e, ok := h.engines[handle]
	if !ok {
		return
	}
	delete(h.engines, handle)
	e.Destroy()
	e.log.Info("rasen: engine released", "handle", fmt.Sprint(handle))
}

// Len returns the number of live engines.
func (h *Hosts[K]) Len() int {
	return len(h.engines)
}
