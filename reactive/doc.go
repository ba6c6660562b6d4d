// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Package reactive is the minimal dependency-tracking runtime shape
// components use to re-render when their inputs change.
//
// A component describes its dependencies as a function returning a slice of
// values and passes it to Watch together with a callback. After any Signal
// changes, the runtime re-evaluates every watcher's dependencies and calls
// the callback of those whose values differ from the previous evaluation.
//
//	rt := reactive.NewRuntime()
//	x := reactive.NewSignal(rt, 50.0)
//	stop := reactive.Watch(rt,
//		func() []any { return []any{x.Get()} },
//		func() { fmt.Println("x is", x.Get()) },
//		reactive.Immediate())
//	x.Set(150) // prints "x is 150"
//	stop()
package reactive
