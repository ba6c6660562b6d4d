// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/region"
)

// Surface is the drawing target an Engine repaints.
//
// Only the engine's flush calls these methods, and only one flush runs at a
// time. The *gg.Context a method returns is where draw callbacks paint for
// the rest of that flush.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)

	// Clear erases the whole surface.
	Clear() *gg.Context

	// BeginRegion saves the drawing state, confines drawing to r and erases
	// r. Pixels outside r must be left untouched until EndRegion.
	BeginRegion(r region.Rect) *gg.Context

	// EndRegion restores the state saved by BeginRegion.
	EndRegion()
}

// Presenter is implemented by surfaces that publish their pixels somewhere
// after a repaint, such as a GPU texture. The engine calls Present after
// every flush that drew.
type Presenter interface {
	Present() error
}

// surfaceRect returns the whole-surface rectangle of s.
func surfaceRect(s Surface) region.Rect {
	w, h := s.Size()
	return region.XYWH(0, 0, float64(w), float64(h))
}
