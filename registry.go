// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// Drawable is a unit the engine can repaint.
//
// Bounds returns the surface-space box the drawable currently paints, or
// false when it has nothing to show yet. The engine evaluates Bounds at
// flush time and skips drawables without bounds.
//
// Draw paints the drawable onto dc. It is only called from a flush.
type Drawable interface {
	Bounds() (region.Rect, bool)
	Draw(dc *gg.Context)
}

// DrawableFuncs adapts a pair of functions to the Drawable interface.
// A nil BoundsFunc reports no bounds; a nil DrawFunc draws nothing.
type DrawableFuncs struct {
	BoundsFunc func() (region.Rect, bool)
	DrawFunc   func(dc *gg.Context)
}

// Bounds implements Drawable.
func (f DrawableFuncs) Bounds() (region.Rect, bool) {
	if f.BoundsFunc == nil {
		return region.Rect{}, false
	}
	return f.BoundsFunc()
}

// Draw implements Drawable.
func (f DrawableFuncs) Draw(dc *gg.Context) {
	if f.DrawFunc != nil {
		f.DrawFunc(dc)
	}
}

// ID identifies a registered drawable. The zero ID is never issued.
type ID uint64

// Registry is an identity-keyed table of drawables.
//
// IDs come from a counter that is never reset, so an ID is not reused for
// the lifetime of the registry even across Reset. Iteration follows
// registration order, which is also paint order.
//
// Registry is NOT safe for concurrent use.
type Registry struct {
	next    ID
	entries map[ID]Drawable
	order   []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]Drawable)}
}

// Register adds d and returns its new ID.
func (r *Registry) Register(d Drawable) ID {
	r.next++
	id := r.next
	r.entries[id] = d
	r.order = append(r.order, id)
	return id
}

// Unregister removes the drawable with the given ID.
// Unknown or already removed IDs are ignored.
func (r *Registry) Unregister(id ID) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	// Compact once tombstones outnumber live entries.
	if len(r.order) > 2*len(r.entries)+8 {
		r.compact()
	}
}

// Has reports whether id is currently registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of registered drawables.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset removes every drawable. IDs keep counting from where they were.
func (r *Registry) Reset() {
	clear(r.entries)
	r.order = nil
}

// each calls fn for every drawable registered when each was called, in
// registration order. Drawables unregistered during the walk are skipped.
func (r *Registry) each(fn func(id ID, d Drawable)) {
	for _, id := range r.order {
		if d, ok := r.entries[id]; ok {
			fn(id, d)
		}
	}
}

func (r *Registry) compact() {
	live := make([]ID, 0, len(r.entries))
	for _, id := range r.order {
		if _, ok := r.entries[id]; ok {
			live = append(live, id)
		}
	}
	r.order = live
}
