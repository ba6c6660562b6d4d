// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package rasen

import (
	"log/slog"
	"testing"

	"github.com/rasenjs/rasen-sub000/frame"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.fullRedraw {
		t.Error("default fullRedraw = true, want false")
	}
	if o.maxRegions != DefaultMaxRegions {
		t.Errorf("default maxRegions = %d, want %d", o.maxRegions, DefaultMaxRegions)
	}
	if o.scheduler != nil || o.logger != nil {
		t.Error("default scheduler and logger should be unset")
	}
}

func TestOptions(t *testing.T) {
	loop := frame.NewLoop()
	sched := loop.Frames()
	l := slog.New(nopHandler{})

	tests := []struct {
		name  string
		opt   Option
		check func(o options) bool
	}{
		{"WithFullRedraw", WithFullRedraw(), func(o options) bool { return o.fullRedraw }},
		{"WithScheduler", WithScheduler(sched), func(o options) bool { return o.scheduler == sched }},
		{"WithMaxRegions", WithMaxRegions(8), func(o options) bool { return o.maxRegions == 8 }},
		{"WithMaxRegions negative", WithMaxRegions(-3), func(o options) bool { return o.maxRegions == DefaultMaxRegions }},
		{"WithLogger", WithLogger(l), func(o options) bool { return o.logger == l }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("%s not applied: %+v", tt.name, o)
			}
		})
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(newFakeSurface(10, 10))
	if e.FullRedraw() {
		t.Error("FullRedraw() = true by default")
	}
	if e.sched == nil || e.log == nil {
		t.Error("NewEngine left scheduler or logger nil")
	}
	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
}
