// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"github.com/gogpu/gg"

	rasen "github.com/rasenjs/rasen-sub000"
	"github.com/rasenjs/rasen-sub000/reactive"
	"github.com/rasenjs/rasen-sub000/region"
)

// Mounted is a shape attached to an engine. It repaints itself whenever
// the values its props function reads change.
type Mounted struct {
	handle *rasen.Handle
	stop   func()

	cur    Shape
	box    region.Rect
	hasBox bool
	done   bool
}

// Mount attaches the shape returned by props to eng and watches it.
//
// Every time props returns a shape whose Deps differ, the old and the new
// full bounds are marked dirty together. Inside a group the group's bounds
// are marked instead. The first evaluation happens before Mount returns.
func Mount(eng *rasen.Engine, rt *reactive.Runtime, props func() Shape) *Mounted {
	m := &Mounted{}
	m.handle = eng.Attach(rasen.DrawableFuncs{
		BoundsFunc: m.Bounds,
		DrawFunc:   m.draw,
	})
	m.handle.OnClose(m.Unmount)
	m.stop = reactive.Watch(rt,
		func() []any { return props().Deps() },
		func() { m.update(props()) },
		reactive.Immediate())
	return m
}

// Bounds returns the box the shape painted at its last update.
func (m *Mounted) Bounds() (region.Rect, bool) {
	return m.box, m.hasBox
}

// Shape returns the current shape, or nil after Unmount.
func (m *Mounted) Shape() Shape {
	return m.cur
}

// Handle returns the engine attachment.
func (m *Mounted) Handle() *rasen.Handle {
	return m.handle
}

func (m *Mounted) update(s Shape) {
	old, hadOld := m.box, m.hasBox
	m.cur = s
	m.box, m.hasBox = FullBounds(s)

	rs := make([]region.Rect, 0, 2)
	if hadOld {
		rs = append(rs, old)
	}
	if m.hasBox {
		rs = append(rs, m.box)
	}
	if len(rs) > 0 {
		m.handle.Invalidate(rs...)
	}
}

func (m *Mounted) draw(dc *gg.Context) {
	if m.cur != nil {
		Paint(dc, m.cur)
	}
}

// Unmount stops watching, marks the last painted box dirty and detaches
// the shape. Unmount is idempotent.
func (m *Mounted) Unmount() {
	if m.done {
		return
	}
	m.done = true
	m.stop()
	if m.hasBox {
		m.handle.Invalidate(m.box)
	}
	m.handle.Detach()
	m.cur = nil
	m.box, m.hasBox = region.Rect{}, false
}
