// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package region implements the rectangle algebra used for damage tracking.
//
// All functions are pure and deterministic. The engine uses Intersects to
// decide which drawables overlap a dirty area and MergeAll to collapse the
// rectangles accumulated during one scheduling tick into a single repaint
// region.
package region
