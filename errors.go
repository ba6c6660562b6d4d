// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import "errors"

// Usage errors. Everything else is tolerated silently: double unregister,
// marks after Destroy and empty flushes are no-ops.
var (
	// ErrNoEngine is returned when an engine is requested for a surface
	// handle that was never initialised with Hosts.Init, or was released.
	ErrNoEngine = errors.New("rasen: no engine for surface (call Hosts.Init first)")

	// ErrNilSurface is returned when a nil Surface is passed to Hosts.Init.
	ErrNilSurface = errors.New("rasen: nil surface")
)
