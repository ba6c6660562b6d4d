// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	rasen "github.com/rasenjs/rasen-sub000"
	"github.com/rasenjs/rasen-sub000/bounds"
	"github.com/rasenjs/rasen-sub000/frame"
	"github.com/rasenjs/rasen-sub000/ggsurface"
	"github.com/rasenjs/rasen-sub000/reactive"
	"github.com/rasenjs/rasen-sub000/region"
)

type harness struct {
	loop *frame.Loop
	surf *ggsurface.Surface
	eng  *rasen.Engine
	rt   *reactive.Runtime
}

func newHarness(t *testing.T, width, height int) *harness {
	t.Helper()
	loop := frame.NewLoop()
	surf := ggsurface.MustNewSize(width, height)
	h := &harness{
		loop: loop,
		surf: surf,
		eng:  rasen.NewEngine(surf, rasen.WithScheduler(loop.Microtasks())),
		rt:   reactive.NewRuntime(),
	}
	t.Cleanup(func() {
		h.eng.Destroy()
		_ = surf.Close()
	})
	return h
}

func (h *harness) flush() {
	h.loop.RunMicrotasks()
}

func (h *harness) alpha(x, y int) uint8 {
	pm := h.surf.Context().ResizeTarget()
	return pm.Data()[(y*pm.Width()+x)*4+3]
}

func (h *harness) pixel(x, y int) [4]uint8 {
	pm := h.surf.Context().ResizeTarget()
	i := (y*pm.Width() + x) * 4
	d := pm.Data()
	return [4]uint8{d[i], d[i+1], d[i+2], d[i+3]}
}

func TestMountPaintsOnce(t *testing.T) {
	h := newHarness(t, 100, 100)
	m := Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: 10, Y: 10, Width: 20, Height: 20}
	})

	if got := h.eng.Stats().Marks; got != 1 {
		t.Errorf("Marks after Mount = %d, want 1", got)
	}
	h.flush()

	st := h.eng.Stats()
	if st.Flushes != 1 {
		t.Errorf("Flushes = %d, want 1", st.Flushes)
	}
	want, _ := m.Bounds()
	if st.LastRegion != want {
		t.Errorf("LastRegion = %v, want %v", st.LastRegion, want)
	}
	if got := h.pixel(20, 20); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("pixel(20, 20) = %v, want opaque red", got)
	}
}

func TestMoveInvalidation(t *testing.T) {
	h := newHarness(t, 300, 200)
	x := reactive.NewSignal(h.rt, 50.0)
	Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: x.Get(), Y: 50, Width: 50, Height: 50}
	})
	h.flush()

	x.Set(150)
	h.flush()

	for py := 50; py < 100; py++ {
		for px := 50; px < 100; px++ {
			if a := h.alpha(px, py); a != 0 {
				t.Fatalf("old area pixel (%d, %d) alpha = %d, want 0", px, py, a)
			}
		}
	}
	for py := 51; py < 99; py++ {
		for px := 151; px < 199; px++ {
			if a := h.alpha(px, py); a != 255 {
				t.Fatalf("new area pixel (%d, %d) alpha = %d, want 255", px, py, a)
			}
		}
	}
	want := region.Union(region.XYWH(49, 49, 52, 52), region.XYWH(149, 49, 52, 52))
	if got := h.eng.Stats().LastRegion; got != want {
		t.Errorf("LastRegion = %v, want %v", got, want)
	}
}

func TestNonInterference(t *testing.T) {
	h := newHarness(t, 300, 100)
	blue := reactive.NewSignal(h.rt, 0.0)
	Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, Width: 50, Height: 50}
	})
	Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(0, 0, blue.Get())}, X: 200, Width: 50, Height: 50}
	})
	h.flush()

	// A sentinel inside A survives only if A's area is left alone.
	h.surf.Context().ResizeTarget().SetPixel(25, 25, gg.RGB(0, 1, 0))
	before := h.eng.Stats().Draws

	blue.Set(1)
	h.flush()

	if got := h.eng.Stats().Draws - before; got != 1 {
		t.Errorf("draws for B's change = %d, want 1", got)
	}
	if got := h.pixel(25, 25); got != [4]uint8{0, 255, 0, 255} {
		t.Errorf("sentinel pixel = %v, want untouched green", got)
	}
	if got := h.pixel(225, 25); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("B pixel = %v, want opaque blue", got)
	}
}

func TestMountIgnoresEqualProps(t *testing.T) {
	h := newHarness(t, 100, 100)
	angle := reactive.NewSignal(h.rt, 0.5)
	other := reactive.NewSignal(h.rt, 0)
	Mount(h.eng, h.rt, func() Shape {
		return Circle{
			Style: Style{Fill: gg.RGB(0, 1, 0), Transform: &bounds.Transform{Rotation: angle.Get()}},
			CX:    50, CY: 50, R: 10,
		}
	})
	h.flush()
	marks := h.eng.Stats().Marks

	other.Set(1)
	if got := h.eng.Stats().Marks - marks; got != 0 {
		t.Errorf("marks after unrelated change = %d, want 0", got)
	}
	angle.Set(1)
	if got := h.eng.Stats().Marks - marks; got != 1 {
		t.Errorf("marks after rotation change = %d, want 1", got)
	}
}

func TestUnmountIdempotent(t *testing.T) {
	h := newHarness(t, 100, 100)
	m := Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: 10, Y: 10, Width: 20, Height: 20}
	})
	h.flush()
	marks := h.eng.Stats().Marks

	m.Unmount()
	m.Unmount()

	if got := h.eng.Stats().Marks - marks; got != 1 {
		t.Errorf("marks from Unmount twice = %d, want 1", got)
	}
	if h.eng.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.eng.Len())
	}
	h.flush()
	if a := h.alpha(20, 20); a != 0 {
		t.Errorf("alpha after Unmount = %d, want 0", a)
	}
	if m.Shape() != nil {
		t.Error("Shape() after Unmount is not nil")
	}
}

func TestShadowPaintsOffset(t *testing.T) {
	h := newHarness(t, 100, 100)
	Mount(h.eng, h.rt, func() Shape {
		return Rect{
			Style: Style{
				Fill:   gg.RGB(1, 0, 0),
				Shadow: &ShadowStyle{Color: gg.RGB(0, 0, 0), OffsetX: 20, OffsetY: 20},
			},
			X: 10, Y: 10, Width: 20, Height: 20,
		}
	})
	h.flush()

	if got := h.pixel(20, 20); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("shape pixel = %v, want opaque red", got)
	}
	if got := h.pixel(45, 45); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("shadow pixel = %v, want opaque black", got)
	}
	if a := h.alpha(5, 5); a != 0 {
		t.Errorf("alpha outside shape and shadow = %d, want 0", a)
	}
}

func TestOpacity(t *testing.T) {
	h := newHarness(t, 50, 50)
	Mount(h.eng, h.rt, func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0), Opacity: 0.5}, Width: 50, Height: 50}
	})
	h.flush()

	if a := h.alpha(25, 25); math.Abs(float64(a)-128) > 2 {
		t.Errorf("alpha = %d, want about 128", a)
	}
}

func TestZeroScaleCollapses(t *testing.T) {
	h := newHarness(t, 100, 100)
	sy := reactive.NewSignal(h.rt, 1.0)
	Mount(h.eng, h.rt, func() Shape {
		return Rect{
			Style: Style{Fill: gg.RGB(1, 0, 0), Transform: &bounds.Transform{ScaleY: bounds.Factor(sy.Get())}},
			X:     10, Y: 10, Width: 40, Height: 40,
		}
	})
	h.flush()
	if a := h.alpha(30, 30); a != 255 {
		t.Fatalf("alpha at scale 1 = %d, want 255", a)
	}

	sy.Set(0)
	h.flush()
	if a := h.alpha(30, 30); a != 0 {
		t.Errorf("alpha at scale 0 = %d, want 0", a)
	}
}
