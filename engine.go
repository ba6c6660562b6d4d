// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"log/slog"

	"github.com/rasenjs/rasen-sub000/frame"
	"github.com/rasenjs/rasen-sub000/region"
)

// State is the scheduler state of an Engine.
type State uint8

const (
	// StateIdle means nothing is pending.
	StateIdle State = iota

	// StateScheduled means a flush callback is queued.
	StateScheduled

	// StateFlushing means a flush is repainting the surface.
	StateFlushing

	// StateDestroyed means Destroy was called.
	StateDestroyed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateScheduled:
		return "Scheduled"
	case StateFlushing:
		return "Flushing"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Stats counts the work an engine has done.
type Stats struct {
	// Marks is the number of MarkDirty and MarkAllDirty calls accepted.
	Marks int

	// Flushes is the number of flushes that repainted something.
	Flushes int

	// FullRepaints counts flushes that cleared the whole surface,
	// including FlushSync.
	FullRepaints int

	// Draws is the total number of Draw calls issued to drawables.
	Draws int

	// LastRegion is the area repainted by the most recent flush.
	LastRegion region.Rect
}

// Engine batches dirty marks and repaints the invalidated part of a surface.
//
// In region-tracking mode (the default) every MarkDirty rectangle issued
// before the scheduled callback fires is merged into one box; the flush
// clears that box and redraws the drawables intersecting it. In full-redraw
// mode (WithFullRedraw) a flush clears and redraws everything.
//
// Engine is NOT safe for concurrent use. All calls, and the scheduler's
// callbacks, must happen on one goroutine.
type Engine struct {
	surface  Surface
	opts     options
	sched    frame.Scheduler
	log      *slog.Logger
	registry *Registry
	groups   GroupStack

	pending []region.Rect
	full    bool

	scheduled bool
	token     frame.Token
	gen       uint64

	flushing  bool
	destroyed bool
	stats     Stats
}

// NewEngine creates an engine that repaints s.
func NewEngine(s Surface, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sched := o.scheduler
	if sched == nil {
		sched = frame.Default().Microtasks()
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	return &Engine{
		surface:  s,
		opts:     o,
		sched:    sched,
		log:      log,
		registry: NewRegistry(),
	}
}

// Surface returns the surface the engine repaints.
func (e *Engine) Surface() Surface {
	return e.surface
}

// FullRedraw reports whether the engine runs in full-redraw mode.
func (e *Engine) FullRedraw() bool {
	return e.opts.fullRedraw
}

// State returns the current scheduler state.
func (e *Engine) State() State {
	switch {
	case e.destroyed:
		return StateDestroyed
	case e.flushing:
		return StateFlushing
	case e.scheduled:
		return StateScheduled
	default:
		return StateIdle
	}
}

// Stats returns the engine's work counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Len returns the number of registered drawables.
func (e *Engine) Len() int {
	return e.registry.Len()
}

// Register adds d to the registry and returns its ID. It does not mark
// anything dirty. After Destroy it returns 0 and registers nothing.
func (e *Engine) Register(d Drawable) ID {
	if e.destroyed {
		return 0
	}
	return e.registry.Register(d)
}

// Unregister removes a drawable. Unknown IDs are ignored.
func (e *Engine) Unregister(id ID) {
	e.registry.Unregister(id)
}

// Attach registers d, or adds it to the current group frame when a group
// is mounting its children. The returned handle marks and detaches it.
func (e *Engine) Attach(d Drawable) *Handle {
	h := &Handle{eng: e, d: d}
	if f := e.groups.Current(); f != nil {
		h.frame = f
		f.children = append(f.children, h)
		return h
	}
	h.id = e.Register(d)
	if h.id == 0 {
		h.detached = true
	}
	return h
}

// EnterGroup opens a group frame. Drawables attached until the matching
// ExitGroup go into the frame instead of the registry.
func (e *Engine) EnterGroup() *GroupFrame {
	return e.groups.Enter()
}

// ExitGroup closes the current group frame and returns it.
func (e *Engine) ExitGroup() *GroupFrame {
	return e.groups.Exit()
}

// Groups returns the engine's group stack.
func (e *Engine) Groups() *GroupStack {
	return &e.groups
}

// CurrentGroup returns the open group frame, or nil.
func (e *Engine) CurrentGroup() *GroupFrame {
	return e.groups.Current()
}

// MarkDirty records rectangles that need repainting and requests a flush.
//
// In region mode empty rectangles are dropped; calling MarkDirty with no
// rectangles still requests a flush, which then finds nothing to do. In
// full-redraw mode the rectangles are ignored. Marks issued while a flush
// is running are handled by the next flush. After Destroy, MarkDirty does
// nothing.
func (e *Engine) MarkDirty(rs ...region.Rect) {
	if e.destroyed {
		return
	}
	e.stats.Marks++
	switch {
	case e.opts.fullRedraw:
		e.full = true
	case e.full:
		// Whole surface already pending.
	default:
		for _, r := range rs {
			if !r.Empty() {
				e.pending = append(e.pending, r)
			}
		}
		if len(e.pending) > e.opts.maxRegions {
			e.full = true
			e.pending = e.pending[:0]
		}
	}
	e.schedule()
}

// MarkAllDirty marks the whole surface dirty and requests a flush.
func (e *Engine) MarkAllDirty() {
	if e.destroyed {
		return
	}
	e.stats.Marks++
	e.full = true
	e.pending = e.pending[:0]
	e.schedule()
}

// schedule queues one flush callback unless one is already outstanding.
func (e *Engine) schedule() {
	if e.scheduled {
		return
	}
	e.scheduled = true
	gen := e.gen
	e.token = e.sched.Schedule(func() { e.fire(gen) })
}

// cancel drops the outstanding callback. A callback that fires anyway sees
// a stale generation and returns.
func (e *Engine) cancel() {
	e.gen++
	if e.scheduled {
		e.sched.Cancel(e.token)
		e.scheduled = false
		e.token = 0
	}
}

func (e *Engine) fire(gen uint64) {
	if e.destroyed || gen != e.gen {
		return
	}
	e.flush()
}

// flush drains the pending marks and repaints. The pending state is reset
// before any draw callback runs so that marks made while drawing schedule
// a new flush instead of joining this one.
func (e *Engine) flush() {
	e.scheduled = false
	e.token = 0
	rects, full := e.pending, e.full
	e.pending, e.full = nil, false

	if full {
		e.repaintAll()
		return
	}
	if len(rects) == 0 {
		return
	}
	merged, ok := region.MergeAll(rects)
	if !ok {
		return
	}
	merged, ok = merged.Intersect(surfaceRect(e.surface))
	if !ok {
		return
	}
	e.repaintRegion(merged, len(rects))
}

func (e *Engine) repaintRegion(r region.Rect, marks int) {
	e.flushing = true
	defer func() { e.flushing = false }()

	dc := e.surface.BeginRegion(r)
	drawn := 0
	e.registry.each(func(_ ID, d Drawable) {
		b, ok := d.Bounds()
		if !ok || !region.Intersects(b, r) {
			return
		}
		d.Draw(dc)
		drawn++
	})
	e.surface.EndRegion()

	e.stats.Flushes++
	e.stats.Draws += drawn
	e.stats.LastRegion = r
	e.log.Debug("rasen: region flush",
		"region", r.String(),
		"marks", marks,
		"drawn", drawn)
	e.present()
}

func (e *Engine) repaintAll() {
	e.flushing = true
	defer func() { e.flushing = false }()

	dc := e.surface.Clear()
	drawn := 0
	e.registry.each(func(_ ID, d Drawable) {
		if _, ok := d.Bounds(); !ok {
			return
		}
		d.Draw(dc)
		drawn++
	})

	e.stats.Flushes++
	e.stats.FullRepaints++
	e.stats.Draws += drawn
	e.stats.LastRegion = surfaceRect(e.surface)
	e.log.Debug("rasen: full flush", "drawn", drawn)
	e.present()
}

func (e *Engine) present() {
	p, ok := e.surface.(Presenter)
	if !ok {
		return
	}
	if err := p.Present(); err != nil {
		e.log.Warn("rasen: present failed", "err", err)
	}
}

// FlushSync repaints the whole surface now. Any pending marks are dropped
// and the outstanding callback is cancelled; if the scheduler cannot cancel
// it, the callback finds nothing to do when it fires.
//
// Called from inside a draw callback, FlushSync only marks the whole
// surface dirty for the next flush.
func (e *Engine) FlushSync() {
	if e.destroyed {
		return
	}
	if e.flushing {
		e.MarkAllDirty()
		return
	}
	e.cancel()
	e.pending, e.full = nil, false
	e.repaintAll()
}

// Destroy cancels the outstanding callback and forgets every drawable and
// pending mark. Later calls on the engine are tolerated as no-ops.
// Destroy is idempotent.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.cancel()
	e.registry.Reset()
	e.groups.reset()
	e.pending, e.full = nil, false
	e.destroyed = true
	e.log.Debug("rasen: engine destroyed")
}
