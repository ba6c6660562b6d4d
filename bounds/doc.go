// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package bounds computes the surface-space box a shape paints, including
// its transform and drop shadow.
//
// The engine clears exactly the area reported here, so the calculation must
// over-estimate rather than under-estimate: a shadow or rotated corner left
// outside the box would leave stale pixels behind on the next frame.
//
// The same Transform is used for drawing (Transform.Apply) and for
// measuring (Full), which keeps the two in lock step.
package bounds
