// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package bounds

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// Transform describes the per-shape affine transform.
//
// Angles are in radians. A nil ScaleX or ScaleY leaves that axis unscaled,
// so a partially filled literal such as Transform{Rotation: math.Pi/4}
// behaves as expected. Factor(0) collapses the axis.
//
// The transform is applied about Pivot (the centre of the shape's own box
// when nil) in this order: scale, skew, rotation. The translation is
// applied last, in surface coordinates.
type Transform struct {
	Rotation   float64
	ScaleX     *float64
	ScaleY     *float64
	SkewX      float64
	SkewY      float64
	TranslateX float64
	TranslateY float64
	Pivot      *gg.Point
}

// Factor returns a scale factor for Transform.ScaleX or Transform.ScaleY.
func Factor(v float64) *float64 {
	return &v
}

// Scale returns the effective axis scales. Unset axes and a nil transform
// scale by 1.
func (t *Transform) Scale() (sx, sy float64) {
	sx, sy = 1, 1
	if t == nil {
		return sx, sy
	}
	if t.ScaleX != nil {
		sx = *t.ScaleX
	}
	if t.ScaleY != nil {
		sy = *t.ScaleY
	}
	return sx, sy
}

// IsLinear reports whether the transform rotates, scales or skews.
// A pure translation is not linear in this sense.
func (t *Transform) IsLinear() bool {
	if t == nil {
		return false
	}
	sx, sy := t.Scale()
	return t.Rotation != 0 || sx != 1 || sy != 1 || t.SkewX != 0 || t.SkewY != 0
}

// IsIdentity reports whether the transform has no effect.
func (t *Transform) IsIdentity() bool {
	return t == nil || (!t.IsLinear() && t.TranslateX == 0 && t.TranslateY == 0)
}

// PivotFor returns the point rotation and scale are applied about.
func (t *Transform) PivotFor(base region.Rect) gg.Point {
	if t != nil && t.Pivot != nil {
		return *t.Pivot
	}
	cx, cy := base.Center()
	return gg.Pt(cx, cy)
}

// linear returns the pivot-relative scale, skew and rotation without the
// final translation.
func (t *Transform) linear(base region.Rect) gg.Matrix {
	p := t.PivotFor(base)
	sx, sy := t.Scale()
	m := gg.Translate(p.X, p.Y).
		Multiply(gg.Rotate(t.Rotation)).
		Multiply(gg.Shear(math.Tan(t.SkewX), math.Tan(t.SkewY))).
		Multiply(gg.Scale(sx, sy)).
		Multiply(gg.Translate(-p.X, -p.Y))
	return m
}

// Matrix returns the full transform for a shape whose untransformed box is
// base. Drawing code installs this matrix so that what is painted is exactly
// what Full measured.
func (t *Transform) Matrix(base region.Rect) gg.Matrix {
	if t == nil {
		return gg.Identity()
	}
	if !t.IsLinear() {
		return gg.Translate(t.TranslateX, t.TranslateY)
	}
	return gg.Translate(t.TranslateX, t.TranslateY).Multiply(t.linear(base))
}

// Apply installs the transform on dc by multiplying it into the current
// matrix. Callers bracket it with dc.Push and dc.Pop.
func (t *Transform) Apply(dc *gg.Context, base region.Rect) {
	if t.IsIdentity() {
		return
	}
	dc.Transform(t.Matrix(base))
}
