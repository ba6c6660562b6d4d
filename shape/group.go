// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	rasen "github.com/rasenjs/rasen-sub000"
	"github.com/rasenjs/rasen-sub000/bounds"
	"github.com/rasenjs/rasen-sub000/ggsurface"
	"github.com/rasenjs/rasen-sub000/reactive"
	"github.com/rasenjs/rasen-sub000/region"
)

// GroupProps is the state a group shares with its children.
//
// Clip is in the group's local coordinates, before the offset and the
// transform. Without a clip the group covers the whole surface. The
// transform pivots about the clip centre, or the surface centre without
// a clip.
type GroupProps struct {
	OffsetX, OffsetY float64
	Transform        *bounds.Transform
	Opacity          float64
	Clip             *region.Rect
	Shadow           *ShadowStyle
	Hidden           bool
}

func (p *GroupProps) opacity() float64 {
	if p.Opacity <= 0 || p.Opacity > 1 {
		return 1
	}
	return p.Opacity
}

func (p *GroupProps) deps() []any {
	clip := []any{false}
	if p.Clip != nil {
		clip = []any{true, *p.Clip}
	}
	d := []any{p.OffsetX, p.OffsetY, p.Opacity, p.Hidden}
	d = append(d, transformDeps(p.Transform)...)
	d = append(d, clip...)
	return append(d, shadowDeps(p.Shadow)...)
}

// offscreen reports whether children must be composited through a
// separate buffer.
func (p *GroupProps) offscreen() bool {
	return p.Clip != nil || p.Shadow != nil
}

// Group paints its children inside one shared transform, opacity, clip and
// shadow. It is a single registry entry; any change to the group or one of
// its children marks the group's whole bounds dirty.
type Group struct {
	eng    *rasen.Engine
	handle *rasen.Handle
	frame  *rasen.GroupFrame
	stop   func()

	props  GroupProps
	box    region.Rect
	hasBox bool
	off    *gg.Context
	done   bool
}

// MountGroup attaches a group to eng and runs children, which mounts the
// group's children into it. props is watched; a change marks the old and
// the new group bounds dirty in one call.
func MountGroup(eng *rasen.Engine, rt *reactive.Runtime, props func() GroupProps, children func()) *Group {
	g := &Group{eng: eng, props: props()}
	g.handle = eng.Attach(rasen.DrawableFuncs{
		BoundsFunc: g.Bounds,
		DrawFunc:   g.draw,
	})
	g.handle.OnClose(g.Unmount)
	g.box, g.hasBox = g.measure()

	g.frame = eng.EnterGroup()
	g.frame.Bind(g.handle, g.Bounds)
	func() {
		defer eng.ExitGroup()
		if children != nil {
			children()
		}
	}()

	g.stop = reactive.Watch(rt,
		func() []any {
			p := props()
			return p.deps()
		},
		func() { g.update(props()) })
	if g.hasBox {
		g.handle.Invalidate(g.box)
	}
	return g
}

// Bounds returns the group's dirty box.
func (g *Group) Bounds() (region.Rect, bool) {
	return g.box, g.hasBox
}

// Props returns the current group state.
func (g *Group) Props() GroupProps {
	return g.props
}

// Frame returns the frame holding the group's children.
func (g *Group) Frame() *rasen.GroupFrame {
	return g.frame
}

// base is the local box the group's transform pivots about.
func (g *Group) base() region.Rect {
	if g.props.Clip != nil {
		return *g.props.Clip
	}
	w, h := g.eng.Surface().Size()
	return region.XYWH(0, 0, float64(w), float64(h))
}

func (g *Group) measure() (region.Rect, bool) {
	p := &g.props
	if p.Hidden {
		return region.Rect{}, false
	}
	if p.Clip == nil {
		w, h := g.eng.Surface().Size()
		return region.XYWH(0, 0, float64(w), float64(h)), true
	}
	r := bounds.Transformed(*p.Clip, p.Transform).Offset(p.OffsetX, p.OffsetY)
	return bounds.Full(r, bounds.Effects{Shadow: p.Shadow.geometry()}), true
}

// matrix maps group-local coordinates into the parent's space.
func (g *Group) matrix() gg.Matrix {
	p := &g.props
	return gg.Translate(p.OffsetX, p.OffsetY).Multiply(p.Transform.Matrix(g.base()))
}

func (g *Group) update(p GroupProps) {
	old, hadOld := g.box, g.hasBox
	g.props = p
	g.box, g.hasBox = g.measure()

	rs := make([]region.Rect, 0, 2)
	if hadOld {
		rs = append(rs, old)
	}
	if g.hasBox {
		rs = append(rs, g.box)
	}
	if len(rs) > 0 {
		g.handle.Invalidate(rs...)
	}
}

func (g *Group) draw(dc *gg.Context) {
	p := &g.props
	if p.Hidden || g.frame.Len() == 0 {
		return
	}
	if op := p.opacity(); op < 1 {
		dc.PushLayer(gg.BlendNormal, op)
		defer dc.PopLayer()
	}
	if !p.offscreen() {
		dc.Push()
		dc.Transform(g.matrix())
		g.frame.Draw(dc)
		dc.Pop()
		return
	}
	g.composite(dc)
}

// composite renders the children into an offscreen buffer and copies the
// clip area over dc's pixels. A rotated or skewed clip is approximated by
// its device-space bounding box.
func (g *Group) composite(dc *gg.Context) {
	w, h := dc.Width(), dc.Height()
	if g.off == nil || g.off.Width() != w || g.off.Height() != h {
		if g.off != nil {
			_ = g.off.Close()
		}
		g.off = gg.NewContext(w, h)
	}
	screen := image.Rect(0, 0, w, h)
	parent := dc.GetTransform()
	m := parent.Multiply(g.matrix())

	box := screen
	if g.props.Clip != nil {
		box = bounds.MapRect(*g.props.Clip, m).Pixels().Intersect(screen)
	}
	if box.Empty() {
		return
	}

	g.off.Clear()
	g.off.SetTransform(m)
	g.frame.Draw(g.off)
	_ = g.off.FlushGPU()

	src := ggsurface.RGBAView(g.off.ResizeTarget())
	dst := ggsurface.RGBAView(dc.ResizeTarget())
	if sh := g.props.Shadow; sh != nil {
		d := parent.TransformVector(gg.Pt(sh.OffsetX, sh.OffsetY))
		castShadow(dst, src, box, sh.Color, blurRadius(sh.Blur), image.Pt(round(d.X), round(d.Y)))
	}
	draw.Draw(dst, box, src, box.Min, draw.Over)
}

// Unmount stops watching, marks the group's box dirty and detaches it. Every
// child, nested groups included, is unmounted with it. Unmount is
// idempotent.
func (g *Group) Unmount() {
	if g.done {
		return
	}
	g.done = true
	g.stop()
	if g.hasBox {
		g.handle.Invalidate(g.box)
	}
	g.handle.Detach()
	g.frame.Close()
	g.box, g.hasBox = region.Rect{}, false
	if g.off != nil {
		_ = g.off.Close()
		g.off = nil
	}
}
