// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package ggsurface lets a rasen engine repaint a gg drawing context.
//
// The data flow for a region repaint is:
//
//	BeginRegion: scratch region cleared -> draw callbacks paint scratch
//	EndRegion:   scratch region copied over the target region
//
// so the target only ever changes inside the dirty region. Full repaints
// clear and draw the target directly.
//
// # GPU presentation
//
// With WithTexture the surface uploads its pixels to a GPU texture after
// every repaint that changed them, following the same CPU-to-GPU path as
// gg's ggcanvas integration:
//
//	gg.Context (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use.
package ggsurface
