// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package shape provides reactive shape components for a rasen engine.
//
// A shape is a plain value (Rect, Circle, Ellipse, Line, Polygon, Star or
// Path) carrying a Style. Mount attaches a props function to an engine and
// repaints the shape's old and new boxes whenever the values it returns
// change:
//
//	x := reactive.NewSignal(rt, 50.0)
//	m := shape.Mount(eng, rt, func() shape.Shape {
//		return shape.Rect{
//			Style: shape.Style{Fill: gg.RGB(1, 0, 0)},
//			X:     x.Get(), Y: 50, Width: 50, Height: 50,
//		}
//	})
//	x.Set(150) // marks the boxes at x=50 and x=150 dirty
//	m.Unmount()
//
// MountGroup draws several shapes under one offset, transform, opacity,
// clip and shadow. Shapes mounted from its children callback belong to the
// group, and a change to any of them marks the whole group dirty.
package shape
