// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package frame provides the deferred-callback machinery the engine uses to
// batch repaints.
//
// A Scheduler is the only thing the engine sees: "run this later" and
// "forget it". Loop implements two flavours on a single logical thread:
//
//   - Microtasks run when the host calls RunMicrotasks at the end of its
//     current turn. Everything queued synchronously before that point is
//     handled in the same pass.
//   - Frame callbacks run once per Tick, which a host calls when it is ready
//     to present a frame (or a Ticker calls at a fixed rate).
//
// Example:
//
//	loop := frame.NewLoop()
//	eng := rasen.NewEngine(surf, rasen.WithScheduler(loop.Frames()))
//	// ... mutate shapes ...
//	loop.Tick() // one coalesced repaint
package frame
