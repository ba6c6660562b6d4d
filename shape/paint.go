// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/bounds"
	"github.com/rasenjs/rasen-sub000/region"
)

// blurPasses is the number of widening translucent strokes used to
// approximate a shadow blur.
const blurPasses = 3

// FullBounds returns the surface-space box that Paint may touch: the
// geometry grown by half the stroke width and an anti-aliasing margin, then
// passed through the transform and shadow. It reports false for hidden
// shapes and shapes without geometry.
func FullBounds(s Shape) (region.Rect, bool) {
	st := s.Appearance()
	base, ok := paintBase(s, &st)
	if !ok {
		return region.Rect{}, false
	}
	return bounds.Full(base, st.effects()), true
}

// paintBase is the untransformed box the transform pivots about.
func paintBase(s Shape, st *Style) (region.Rect, bool) {
	if st.Hidden {
		return region.Rect{}, false
	}
	g, ok := s.Geometry()
	if !ok {
		return region.Rect{}, false
	}
	return g.Inset(-st.pad()), true
}

// Paint draws s onto dc: the shadow first, then the fill, then the stroke.
// The transform is applied with the same matrix FullBounds measured.
func Paint(dc *gg.Context, s Shape) {
	st := s.Appearance()
	base, ok := paintBase(s, &st)
	if !ok {
		return
	}
	// A collapsed axis paints nothing.
	if sx, sy := st.Transform.Scale(); sx == 0 || sy == 0 {
		return
	}
	if st.Shadow != nil {
		paintShadow(dc, s, &st, base)
	}

	dc.Push()
	defer dc.Pop()
	st.Transform.Apply(dc, base)

	op := st.opacity()
	if st.fills() {
		setColor(dc, st.Fill, op)
		s.Trace(dc)
		_ = dc.Fill()
	}
	if st.strokes() {
		setColor(dc, st.Stroke, op)
		dc.SetLineWidth(st.lineWidth())
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetLineCap(gg.LineCapRound)
		s.Trace(dc)
		_ = dc.Stroke()
	}
}

// paintShadow paints the silhouette in the shadow colour, shifted by the
// offset. Blur is approximated by widening translucent strokes that stay
// within the blur allowance FullBounds reserves.
func paintShadow(dc *gg.Context, s Shape, st *Style, base region.Rect) {
	sh := st.Shadow
	dc.Push()
	defer dc.Pop()
	dc.Translate(sh.OffsetX, sh.OffsetY)
	st.Transform.Apply(dc, base)

	op := st.opacity()
	outline := 0.0
	if st.strokes() {
		outline = st.lineWidth()
	}
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	if blur := math.Abs(sh.Blur) / maxScale(st.Transform); blur > 0 {
		c := sh.Color
		c.A /= blurPasses + 1
		for i := blurPasses; i >= 1; i-- {
			setColor(dc, c, op)
			dc.SetLineWidth(outline + 2*blur*float64(i)/blurPasses)
			s.Trace(dc)
			_ = dc.Stroke()
		}
	}

	setColor(dc, sh.Color, op)
	if st.fills() {
		s.Trace(dc)
		_ = dc.Fill()
	}
	if outline > 0 {
		dc.SetLineWidth(outline)
		s.Trace(dc)
		_ = dc.Stroke()
	}
}

func setColor(dc *gg.Context, c gg.RGBA, opacity float64) {
	dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
}
