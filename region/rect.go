// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in surface coordinates.
//
// Rect is a value type: every computation returns a fresh Rect and nothing
// in this module keeps a reference to a caller's rectangle. Rectangles
// produced by the engine have non-negative Width and Height.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// XYWH is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func XYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// FromEdges builds a rectangle from its left, top, right and bottom edges.
func FromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the geometric centre of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns r shrunk by d on every side. A negative d grows the rectangle.
// The result never has negative size; an over-inset collapses to the centre.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.X += out.Width / 2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y += out.Height / 2
		out.Height = 0
	}
	return out
}

// Intersect returns the overlapping part of r and o.
// The second result is false when the rectangles do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if !Intersects(r, o) {
		return Rect{}, false
	}
	return FromEdges(
		math.Max(r.X, o.X),
		math.Max(r.Y, o.Y),
		math.Min(r.Right(), o.Right()),
		math.Min(r.Bottom(), o.Bottom()),
	), true
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Pixels returns the smallest integer rectangle that covers r.
// Edges are rounded outward so fractional bounds are never under-covered.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.X, r.Y, r.Width, r.Height)
}
