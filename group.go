// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// GroupFrame collects the drawables attached while a group is mounting its
// children. The group replays them inside one shared bracket by calling
// Draw from its own draw callback.
//
// Children of a frame have no registry entry of their own: the group owns
// their invalidation, and a change in any child marks the whole group's
// bounds dirty.
type GroupFrame struct {
	children []*Handle
	owner    *Handle
	bounds   func() (region.Rect, bool)
}

// Bind connects the frame to the group that owns it. owner is the group's
// own attachment and bounds reports the group's dirty box. Until Bind is
// called, child invalidations are dropped.
func (f *GroupFrame) Bind(owner *Handle, bounds func() (region.Rect, bool)) {
	f.owner = owner
	f.bounds = bounds
}

// Len returns the number of attached children.
func (f *GroupFrame) Len() int {
	return len(f.children)
}

// Draw paints every child in attach order onto dc. The caller has already
// installed the shared transform, effects and clip.
func (f *GroupFrame) Draw(dc *gg.Context) {
	for _, h := range f.children {
		h.d.Draw(dc)
	}
}

// Invalidate marks the owning group's bounds dirty.
func (f *GroupFrame) Invalidate() {
	if f.owner == nil {
		return
	}
	if f.bounds != nil {
		if r, ok := f.bounds(); ok {
			f.owner.Invalidate(r)
			return
		}
	}
	f.owner.Invalidate()
}

// Close tears the frame down. Every child's OnClose callback runs in attach
// order and the child is detached. Close is idempotent.
func (f *GroupFrame) Close() {
	children := f.children
	f.children = nil
	for _, h := range children {
		if h.onClose != nil {
			h.onClose()
		}
		h.Detach()
	}
}

func (f *GroupFrame) remove(h *Handle) {
	for i, c := range f.children {
		if c == h {
			f.children = append(f.children[:i:i], f.children[i+1:]...)
			return
		}
	}
}

// GroupStack tracks which groups are mounting children. Whichever frame is
// on top when a drawable is attached receives it. Each Engine has its own
// stack, so groups on different surfaces never see each other.
type GroupStack struct {
	frames []*GroupFrame
}

// Enter pushes a new frame and returns it.
func (s *GroupStack) Enter() *GroupFrame {
	f := &GroupFrame{}
	s.frames = append(s.frames, f)
	return f
}

// Exit pops the current frame and returns it. Exit on an empty stack
// returns nil.
func (s *GroupStack) Exit() *GroupFrame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// Current returns the frame on top of the stack, or nil.
func (s *GroupStack) Current() *GroupFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of open frames.
func (s *GroupStack) Depth() int {
	return len(s.frames)
}

func (s *GroupStack) reset() {
	clear(s.frames)
	s.frames = s.frames[:0]
}

// Handle is a drawable's attachment to an engine: either a registry entry
// or a slot in a group frame.
type Handle struct {
	eng      *Engine
	d        Drawable
	id       ID
	frame    *GroupFrame
	onClose  func()
	detached bool
}

// ID returns the registry ID, or 0 when the drawable lives in a group.
func (h *Handle) ID() ID {
	return h.id
}

// Group returns the frame the drawable was attached to, or nil when it has
// its own registry entry.
func (h *Handle) Group() *GroupFrame {
	return h.frame
}

// OnClose registers fn to run when the group frame holding the drawable is
// closed. Owners use it to stop their own subscriptions; fn may call
// Detach. It has no effect for a drawable with its own registry entry.
func (h *Handle) OnClose(fn func()) {
	h.onClose = fn
}

// Invalidate marks rs dirty on the engine. For a drawable inside a group the
// rectangles are ignored and the group's whole bounds are marked instead.
func (h *Handle) Invalidate(rs ...region.Rect) {
	if h.detached {
		return
	}
	if h.frame != nil {
		h.frame.Invalidate()
		return
	}
	h.eng.MarkDirty(rs...)
}

// Detach removes the drawable from the registry or its group.
// Detach is idempotent.
func (h *Handle) Detach() {
	if h.detached {
		return
	}
	h.detached = true
	if h.frame != nil {
		h.frame.remove(h)
		return
	}
	h.eng.Unregister(h.id)
}
