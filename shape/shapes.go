// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"math"
	"reflect"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// Shape is a drawable primitive described by plain values.
//
// Geometry returns the untransformed box of the outline, or false when the
// shape has no valid geometry. Trace adds the outline to dc's current path.
type Shape interface {
	Geometry() (region.Rect, bool)
	Trace(dc *gg.Context)
	Appearance() Style
	Deps() []any
}

// Rect is an axis-aligned rectangle with optionally rounded corners.
type Rect struct {
	Style
	X, Y          float64
	Width, Height float64
	Radius        float64
}

// Geometry implements Shape.
func (r Rect) Geometry() (region.Rect, bool) {
	if r.Width < 0 || r.Height < 0 {
		return region.Rect{}, false
	}
	return region.XYWH(r.X, r.Y, r.Width, r.Height), true
}

// Trace implements Shape.
func (r Rect) Trace(dc *gg.Context) {
	if r.Radius > 0 {
		dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, r.Radius)
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
}

// Appearance implements Shape.
func (r Rect) Appearance() Style { return r.Style }

// Deps implements Shape.
func (r Rect) Deps() []any {
	return append(r.Style.deps(), kind(r), r.X, r.Y, r.Width, r.Height, r.Radius)
}

// Circle is a circle centred on (CX, CY).
type Circle struct {
	Style
	CX, CY float64
	R      float64
}

// Geometry implements Shape.
func (c Circle) Geometry() (region.Rect, bool) {
	if c.R <= 0 {
		return region.Rect{}, false
	}
	return region.XYWH(c.CX-c.R, c.CY-c.R, 2*c.R, 2*c.R), true
}

// Trace implements Shape.
func (c Circle) Trace(dc *gg.Context) {
	dc.DrawCircle(c.CX, c.CY, c.R)
}

// Appearance implements Shape.
func (c Circle) Appearance() Style { return c.Style }

// Deps implements Shape.
func (c Circle) Deps() []any {
	return append(c.Style.deps(), kind(c), c.CX, c.CY, c.R)
}

// Ellipse is an axis-aligned ellipse centred on (CX, CY).
type Ellipse struct {
	Style
	CX, CY float64
	RX, RY float64
}

// Geometry implements Shape.
func (e Ellipse) Geometry() (region.Rect, bool) {
	if e.RX <= 0 || e.RY <= 0 {
		return region.Rect{}, false
	}
	return region.XYWH(e.CX-e.RX, e.CY-e.RY, 2*e.RX, 2*e.RY), true
}

// Trace implements Shape.
func (e Ellipse) Trace(dc *gg.Context) {
	dc.DrawEllipse(e.CX, e.CY, e.RX, e.RY)
}

// Appearance implements Shape.
func (e Ellipse) Appearance() Style { return e.Style }

// Deps implements Shape.
func (e Ellipse) Deps() []any {
	return append(e.Style.deps(), kind(e), e.CX, e.CY, e.RX, e.RY)
}

// Line is a straight segment. Only the stroke is painted; caps are round.
type Line struct {
	Style
	X1, Y1 float64
	X2, Y2 float64
}

// Geometry implements Shape.
func (l Line) Geometry() (region.Rect, bool) {
	return region.FromEdges(
		math.Min(l.X1, l.X2), math.Min(l.Y1, l.Y2),
		math.Max(l.X1, l.X2), math.Max(l.Y1, l.Y2)), true
}

// Trace implements Shape.
func (l Line) Trace(dc *gg.Context) {
	dc.MoveTo(l.X1, l.Y1)
	dc.LineTo(l.X2, l.Y2)
}

// Appearance implements Shape. A line never fills.
func (l Line) Appearance() Style {
	s := l.Style
	s.Fill = gg.Transparent
	return s
}

// Deps implements Shape.
func (l Line) Deps() []any {
	return append(l.Style.deps(), kind(l), l.X1, l.Y1, l.X2, l.Y2)
}

// Polygon is a closed outline through Points.
type Polygon struct {
	Style
	Points []gg.Point
}

// Geometry implements Shape. A polygon needs at least two points.
func (p Polygon) Geometry() (region.Rect, bool) {
	if len(p.Points) < 2 {
		return region.Rect{}, false
	}
	return pointsBox(p.Points), true
}

// Trace implements Shape.
func (p Polygon) Trace(dc *gg.Context) {
	tracePoints(dc, p.Points)
}

// Appearance implements Shape.
func (p Polygon) Appearance() Style { return p.Style }

// Deps implements Shape.
func (p Polygon) Deps() []any {
	return append(p.Style.deps(), kind(p), p.Points)
}

// Star is a regular star polygon centred on (CX, CY). The first outer
// vertex points up, turned by Rotation radians.
type Star struct {
	Style
	CX, CY      float64
	Points      int
	OuterRadius float64
	InnerRadius float64
	Rotation    float64
}

// Vertices returns the alternating outer and inner vertices.
func (s Star) Vertices() []gg.Point {
	if s.Points < 2 {
		return nil
	}
	n := 2 * s.Points
	pts := make([]gg.Point, n)
	step := math.Pi / float64(s.Points)
	for i := range pts {
		r := s.OuterRadius
		if i%2 == 1 {
			r = s.InnerRadius
		}
		a := s.Rotation - math.Pi/2 + float64(i)*step
		pts[i] = gg.Pt(s.CX+r*math.Cos(a), s.CY+r*math.Sin(a))
	}
	return pts
}

// Geometry implements Shape.
func (s Star) Geometry() (region.Rect, bool) {
	pts := s.Vertices()
	if pts == nil || s.OuterRadius <= 0 {
		return region.Rect{}, false
	}
	return pointsBox(pts), true
}

// Trace implements Shape.
func (s Star) Trace(dc *gg.Context) {
	tracePoints(dc, s.Vertices())
}

// Appearance implements Shape.
func (s Star) Appearance() Style { return s.Style }

// Deps implements Shape.
func (s Star) Deps() []any {
	return append(s.Style.deps(), kind(s), s.CX, s.CY, s.Points, s.OuterRadius, s.InnerRadius, s.Rotation)
}

// PathOp is a path command verb.
type PathOp uint8

const (
	// OpMoveTo starts a subpath at Pts[0].
	OpMoveTo PathOp = iota
	// OpLineTo draws a line to Pts[0].
	OpLineTo
	// OpQuadTo draws a quadratic curve with control Pts[0] to Pts[1].
	OpQuadTo
	// OpCubicTo draws a cubic curve with controls Pts[0], Pts[1] to Pts[2].
	OpCubicTo
	// OpClose closes the current subpath.
	OpClose
)

// PathCmd is one command of a Path.
type PathCmd struct {
	Op  PathOp
	Pts [3]gg.Point
}

// MoveTo returns a move command.
func MoveTo(x, y float64) PathCmd {
	return PathCmd{Op: OpMoveTo, Pts: [3]gg.Point{gg.Pt(x, y)}}
}

// LineTo returns a line command.
func LineTo(x, y float64) PathCmd {
	return PathCmd{Op: OpLineTo, Pts: [3]gg.Point{gg.Pt(x, y)}}
}

// QuadTo returns a quadratic curve command.
func QuadTo(cx, cy, x, y float64) PathCmd {
	return PathCmd{Op: OpQuadTo, Pts: [3]gg.Point{gg.Pt(cx, cy), gg.Pt(x, y)}}
}

// CubicTo returns a cubic curve command.
func CubicTo(c1x, c1y, c2x, c2y, x, y float64) PathCmd {
	return PathCmd{Op: OpCubicTo, Pts: [3]gg.Point{gg.Pt(c1x, c1y), gg.Pt(c2x, c2y), gg.Pt(x, y)}}
}

// Close returns a close command.
func Close() PathCmd {
	return PathCmd{Op: OpClose}
}

func (c PathCmd) points() []gg.Point {
	switch c.Op {
	case OpMoveTo, OpLineTo:
		return c.Pts[:1]
	case OpQuadTo:
		return c.Pts[:2]
	case OpCubicTo:
		return c.Pts[:3]
	default:
		return nil
	}
}

// Path is a free-form outline. Curves lie inside the hull of their control
// points, so the box of all points covers the outline.
type Path struct {
	Style
	Cmds []PathCmd
}

// Geometry implements Shape.
func (p Path) Geometry() (region.Rect, bool) {
	var pts []gg.Point
	for _, c := range p.Cmds {
		pts = append(pts, c.points()...)
	}
	if len(pts) == 0 {
		return region.Rect{}, false
	}
	return pointsBox(pts), true
}

// Trace implements Shape.
func (p Path) Trace(dc *gg.Context) {
	for _, c := range p.Cmds {
		switch c.Op {
		case OpMoveTo:
			dc.MoveTo(c.Pts[0].X, c.Pts[0].Y)
		case OpLineTo:
			dc.LineTo(c.Pts[0].X, c.Pts[0].Y)
		case OpQuadTo:
			dc.QuadraticTo(c.Pts[0].X, c.Pts[0].Y, c.Pts[1].X, c.Pts[1].Y)
		case OpCubicTo:
			dc.CubicTo(c.Pts[0].X, c.Pts[0].Y, c.Pts[1].X, c.Pts[1].Y, c.Pts[2].X, c.Pts[2].Y)
		case OpClose:
			dc.ClosePath()
		}
	}
}

// Appearance implements Shape.
func (p Path) Appearance() Style { return p.Style }

// Deps implements Shape.
func (p Path) Deps() []any {
	return append(p.Style.deps(), kind(p), p.Cmds)
}

// kind distinguishes shape types whose fields happen to compare equal.
func kind(s Shape) reflect.Type {
	return reflect.TypeOf(s)
}

func pointsBox(pts []gg.Point) region.Rect {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return region.FromEdges(minX, minY, maxX, maxY)
}

func tracePoints(dc *gg.Context, pts []gg.Point) {
	if len(pts) == 0 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
