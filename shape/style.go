// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/bounds"
)

// aaMargin is added around every shape's geometry so that anti-aliased edge
// pixels fall inside the dirty box.
const aaMargin = 1.0

// ShadowStyle is a drop shadow. The offset is in the coordinate space the
// shape is drawn in, before the shape's own transform.
type ShadowStyle struct {
	Color   gg.RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

func (s *ShadowStyle) geometry() *bounds.Shadow {
	if s == nil {
		return nil
	}
	return &bounds.Shadow{Blur: s.Blur, OffsetX: s.OffsetX, OffsetY: s.OffsetY}
}

// Style is the paint state shared by all shapes.
//
// A colour with zero alpha is not painted. LineWidth defaults to 1 and
// Opacity to fully opaque when zero; use Hidden to hide a shape.
type Style struct {
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64
	Opacity   float64
	Hidden    bool
	Transform *bounds.Transform
	Shadow    *ShadowStyle
}

func (s *Style) fills() bool {
	return s.Fill.A > 0
}

func (s *Style) strokes() bool {
	return s.Stroke.A > 0
}

func (s *Style) lineWidth() float64 {
	if s.LineWidth <= 0 {
		return 1
	}
	return s.LineWidth
}

func (s *Style) opacity() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// pad is how far paint reaches beyond the geometry.
func (s *Style) pad() float64 {
	if s.strokes() {
		return s.lineWidth()/2 + aaMargin
	}
	return aaMargin
}

func (s *Style) effects() bounds.Effects {
	return bounds.Effects{Transform: s.Transform, Shadow: s.Shadow.geometry()}
}

// deps flattens the style into comparable values. Pointer fields are
// dereferenced so that equal literals built on every render compare equal.
func (s *Style) deps() []any {
	return append([]any{s.Fill, s.Stroke, s.LineWidth, s.Opacity, s.Hidden},
		append(transformDeps(s.Transform), shadowDeps(s.Shadow)...)...)
}

func transformDeps(t *bounds.Transform) []any {
	if t == nil {
		return []any{false}
	}
	v := *t
	v.Pivot, v.ScaleX, v.ScaleY = nil, nil, nil
	sx, sy := t.Scale()
	if t.Pivot == nil {
		return []any{true, v, sx, sy, false}
	}
	return []any{true, v, sx, sy, true, *t.Pivot}
}

func shadowDeps(s *ShadowStyle) []any {
	if s == nil {
		return []any{false}
	}
	return []any{true, *s}
}

// maxScale is the largest absolute axis scale of t.
func maxScale(t *bounds.Transform) float64 {
	sx, sy := t.Scale()
	return math.Max(math.Abs(sx), math.Abs(sy))
}
