// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package rasen is a dirty-region incremental rendering engine for gg.
//
// # Overview
//
// Components register drawables (a bounds function and a draw function)
// with an Engine. When something changes, a component marks its old and new
// bounds dirty. The engine batches every mark issued within one scheduling
// tick and repaints once: it merges the marks into a single box, clears that
// box on the surface, and redraws only the drawables whose bounds intersect
// it. Drawables elsewhere on the surface keep their pixels.
//
// # Quick Start
//
//	dc := gg.NewContext(400, 300)
//	surf, _ := ggsurface.New(dc)
//	loop := frame.NewLoop()
//	eng := rasen.NewEngine(surf, rasen.WithScheduler(loop.Microtasks()))
//
//	box := region.XYWH(50, 50, 50, 50)
//	eng.Register(rasen.DrawableFuncs{
//		BoundsFunc: func() (region.Rect, bool) { return box, true },
//		DrawFunc: func(dc *gg.Context) {
//			dc.SetRGB(1, 0, 0)
//			dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
//			_ = dc.Fill()
//		},
//	})
//	eng.MarkDirty(box)
//	loop.RunMicrotasks() // one repaint
//
// # Modes
//
// Region tracking is the default. WithFullRedraw makes every flush clear
// and repaint the whole surface; use it for scenes that change everywhere
// every frame anyway. The mode is fixed when the engine is created.
//
// # Groups
//
// A group shares one transform, effect and clip bracket across several
// children. While a group mounts its children it opens a frame with
// EnterGroup; Attach then puts drawables into that frame instead of the
// registry. The group itself is the only registry entry, and any change to
// the group or a child marks the group's whole bounds dirty. This trades
// repaint precision inside groups for correctness.
//
// # Threading
//
// Everything runs on one logical thread: the engine never blocks and takes
// no locks. The frame package provides the run loop that delivers the
// deferred flush callbacks.
package rasen
