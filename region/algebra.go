// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package region

import "math"

// Intersects reports whether a and b overlap with positive area.
//
// The test is strict: rectangles that only share an edge or a corner do not
// intersect, so adjacent shapes never force each other's redraw.
func Intersects(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Union returns the smallest rectangle containing both a and b.
func Union(a, b Rect) Rect {
	return FromEdges(
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Max(a.Right(), b.Right()),
		math.Max(a.Bottom(), b.Bottom()),
	)
}

// MergeAll returns the bounding rectangle of every rectangle in rs.
// The second result is false when rs is empty.
//
// Only min and max are taken per edge, so the result does not depend on the
// order of rs.
func MergeAll(rs []Rect) (Rect, bool) {
	if len(rs) == 0 {
		return Rect{}, false
	}
	left, top := rs[0].X, rs[0].Y
	right, bottom := rs[0].Right(), rs[0].Bottom()
	for _, r := range rs[1:] {
		left = math.Min(left, r.X)
		top = math.Min(top, r.Y)
		right = math.Max(right, r.Right())
		bottom = math.Max(bottom, r.Bottom())
	}
	return FromEdges(left, top, right, bottom), true
}
