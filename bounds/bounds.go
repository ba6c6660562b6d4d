// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package bounds

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// Shadow describes a drop shadow's geometry. Colour lives with the shape
// style; only the extent matters for bounds.
type Shadow struct {
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// IsZero reports whether the shadow paints nothing outside the shape.
func (s *Shadow) IsZero() bool {
	return s == nil || (s.Blur == 0 && s.OffsetX == 0 && s.OffsetY == 0)
}

// Effects groups the optional transform and shadow of a shape.
type Effects struct {
	Transform *Transform
	Shadow    *Shadow
}

// Full returns the axis-aligned box covering everything a shape paints:
// its base box after the transform, plus the shadow.
//
// The steps run in a fixed order:
//  1. rotation, scale and skew map the four corners of base about the pivot
//     and the min/max of the mapped corners becomes the box;
//  2. the translation moves the box;
//  3. the box grows by twice the blur radius on every side and is unioned
//     with itself shifted by the shadow offset.
//
// Full never rounds. Negative or zero sized input passes through untouched
// by the transform steps.
func Full(base region.Rect, fx Effects) region.Rect {
	r := base
	if t := fx.Transform; t != nil {
		if t.IsLinear() {
			r = MapRect(base, t.linear(base))
		}
		r = r.Offset(t.TranslateX, t.TranslateY)
	}
	if s := fx.Shadow; !s.IsZero() {
		grown := r.Inset(-2 * math.Abs(s.Blur))
		r = region.Union(grown, grown.Offset(s.OffsetX, s.OffsetY))
	}
	return r
}

// Transformed returns base under t without any shadow contribution.
func Transformed(base region.Rect, t *Transform) region.Rect {
	return Full(base, Effects{Transform: t})
}

// MapRect returns the axis-aligned box around r's corners mapped by m.
func MapRect(r region.Rect, m gg.Matrix) region.Rect {
	corners := [4]gg.Point{
		m.TransformPoint(gg.Pt(r.X, r.Y)),
		m.TransformPoint(gg.Pt(r.Right(), r.Y)),
		m.TransformPoint(gg.Pt(r.Right(), r.Bottom())),
		m.TransformPoint(gg.Pt(r.X, r.Bottom())),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return region.FromEdges(minX, minY, maxX, maxY)
}
