// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/rasenjs/rasen-sub000/bounds"
	"github.com/rasenjs/rasen-sub000/reactive"
	"github.com/rasenjs/rasen-sub000/region"
)

func redRect(x, y, w, h float64) func() Shape {
	return func() Shape {
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: x, Y: y, Width: w, Height: h}
	}
}

func TestGroupSingleRegistryEntry(t *testing.T) {
	h := newHarness(t, 200, 200)
	g := MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{} }, func() {
		Mount(h.eng, h.rt, redRect(0, 0, 10, 10))
		Mount(h.eng, h.rt, redRect(20, 0, 10, 10))
		Mount(h.eng, h.rt, redRect(40, 0, 10, 10))
	})

	if h.eng.Len() != 1 {
		t.Errorf("engine Len() = %d, want 1", h.eng.Len())
	}
	if g.Frame().Len() != 3 {
		t.Errorf("group Frame().Len() = %d, want 3", g.Frame().Len())
	}
	if h.eng.CurrentGroup() != nil {
		t.Error("group frame still open after MountGroup")
	}
	want := region.XYWH(0, 0, 200, 200)
	if got, _ := g.Bounds(); got != want {
		t.Errorf("Bounds() without clip = %v, want %v", got, want)
	}

	h.flush()
	if st := h.eng.Stats(); st.Flushes != 1 || st.Draws != 1 {
		t.Errorf("Flushes, Draws = %d, %d; want 1, 1", st.Flushes, st.Draws)
	}
	for _, x := range []int{5, 25, 45} {
		if a := h.alpha(x, 5); a != 255 {
			t.Errorf("child pixel (%d, 5) alpha = %d, want 255", x, a)
		}
	}
}

func TestGroupRotationMarksOnce(t *testing.T) {
	h := newHarness(t, 300, 300)
	angle := reactive.NewSignal(h.rt, 0.0)
	clip := region.XYWH(100, 100, 50, 50)
	g := MountGroup(h.eng, h.rt,
		func() GroupProps {
			return GroupProps{Clip: &clip, Transform: &bounds.Transform{Rotation: angle.Get()}}
		},
		func() {
			Mount(h.eng, h.rt, redRect(100, 100, 20, 20))
			Mount(h.eng, h.rt, redRect(130, 130, 20, 20))
		})
	h.flush()

	before := h.eng.Stats()
	angle.Set(math.Pi / 4)

	if got := h.eng.Stats().Marks - before.Marks; got != 1 {
		t.Errorf("marks for a group rotation = %d, want 1", got)
	}
	h.flush()
	after := h.eng.Stats()
	if got := after.Flushes - before.Flushes; got != 1 {
		t.Errorf("flushes = %d, want 1", got)
	}
	if got := after.Draws - before.Draws; got != 1 {
		t.Errorf("draws = %d, want 1", got)
	}

	box, _ := g.Bounds()
	side := 50 * math.Sqrt2
	if math.Abs(box.Width-side) > 1e-6 {
		t.Errorf("rotated group width = %g, want %g", box.Width, side)
	}
	if !rectNear(after.LastRegion, box, 1e-9) {
		t.Errorf("LastRegion = %v, want %v", after.LastRegion, box)
	}
}

func TestGroupChildChangeMarksGroup(t *testing.T) {
	h := newHarness(t, 300, 300)
	clip := region.XYWH(0, 0, 100, 100)
	x := reactive.NewSignal(h.rt, 10.0)
	g := MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{Clip: &clip, OffsetX: 50} }, func() {
		Mount(h.eng, h.rt, func() Shape {
			return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: x.Get(), Width: 10, Height: 10}
		})
	})
	h.flush()

	x.Set(20)
	h.flush()

	want, _ := g.Bounds()
	if want != region.XYWH(50, 0, 100, 100) {
		t.Fatalf("Bounds() = %v, want {50,0 100x100}", want)
	}
	if got := h.eng.Stats().LastRegion; got != want {
		t.Errorf("LastRegion = %v, want the group bounds %v", got, want)
	}
	if a := h.alpha(75, 5); a != 255 {
		t.Errorf("moved child pixel alpha = %d, want 255", a)
	}
	if a := h.alpha(65, 5); a != 0 {
		t.Errorf("vacated child pixel alpha = %d, want 0", a)
	}
}

func TestGroupClip(t *testing.T) {
	h := newHarness(t, 100, 100)
	clip := region.XYWH(0, 0, 20, 20)
	MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{Clip: &clip} }, func() {
		Mount(h.eng, h.rt, redRect(0, 0, 50, 50))
	})
	h.flush()

	if a := h.alpha(10, 10); a != 255 {
		t.Errorf("inside clip alpha = %d, want 255", a)
	}
	if a := h.alpha(30, 30); a != 0 {
		t.Errorf("outside clip alpha = %d, want 0", a)
	}
}

func TestGroupOpacity(t *testing.T) {
	h := newHarness(t, 50, 50)
	MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{Opacity: 0.5} }, func() {
		Mount(h.eng, h.rt, redRect(0, 0, 50, 50))
	})
	h.flush()

	if a := h.alpha(25, 25); math.Abs(float64(a)-128) > 3 {
		t.Errorf("alpha = %d, want about 128", a)
	}
}

func TestGroupUnmount(t *testing.T) {
	h := newHarness(t, 100, 100)
	var child *Mounted
	g := MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{} }, func() {
		child = Mount(h.eng, h.rt, redRect(0, 0, 10, 10))
	})
	h.flush()

	g.Unmount()
	g.Unmount()
	h.flush()

	if h.eng.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.eng.Len())
	}
	if a := h.alpha(5, 5); a != 0 {
		t.Errorf("alpha after group Unmount = %d, want 0", a)
	}

	marks := h.eng.Stats().Marks
	child.Unmount()
	if got := h.eng.Stats().Marks - marks; got != 0 {
		t.Errorf("child Unmount after group Unmount marked %d times, want 0", got)
	}
}

func TestGroupUnmountStopsChildren(t *testing.T) {
	h := newHarness(t, 100, 100)
	x := reactive.NewSignal(h.rt, 0.0)
	evals := 0
	child := func() Shape {
		evals++
		return Rect{Style: Style{Fill: gg.RGB(1, 0, 0)}, X: x.Get(), Width: 10, Height: 10}
	}
	var inner *Group
	g := MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{} }, func() {
		Mount(h.eng, h.rt, child)
		inner = MountGroup(h.eng, h.rt, func() GroupProps { return GroupProps{OffsetX: x.Get()} }, func() {
			Mount(h.eng, h.rt, child)
		})
	})
	h.flush()
	if got := h.rt.Watchers(); got != 4 {
		t.Fatalf("Watchers() = %d, want 4", got)
	}

	g.Unmount()
	if got := h.rt.Watchers(); got != 0 {
		t.Errorf("Watchers() after group Unmount = %d, want 0", got)
	}
	if inner.Frame().Len() != 0 || g.Frame().Len() != 0 {
		t.Errorf("frame lengths = %d, %d; want 0, 0", g.Frame().Len(), inner.Frame().Len())
	}

	before := evals
	marks := h.eng.Stats().Marks
	x.Set(5)
	if evals != before {
		t.Errorf("child props evaluated %d times after Unmount, want 0", evals-before)
	}
	if got := h.eng.Stats().Marks - marks; got != 0 {
		t.Errorf("marks after Unmount = %d, want 0", got)
	}
}

func TestCastShadow(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	src.Pix[src.PixOffset(5, 5)+3] = 255

	castShadow(dst, src, image.Rect(0, 0, 10, 10), gg.RGB(0, 0, 1), 0, image.Pt(3, 2))

	i := dst.PixOffset(8, 7)
	if got := [4]uint8(dst.Pix[i : i+4]); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("shadow pixel = %v, want opaque blue", got)
	}
	if a := dst.Pix[dst.PixOffset(5, 5)+3]; a != 0 {
		t.Errorf("unshifted pixel alpha = %d, want 0", a)
	}
}

func TestBoxBlur(t *testing.T) {
	v := make([]float64, 25)
	v[12] = 1
	out := boxBlur(v, 5, 5, 1)

	if got := out[12]; math.Abs(got-1.0/9) > 1e-12 {
		t.Errorf("center = %g, want 1/9", got)
	}
	if got := out[0]; got != 0 {
		t.Errorf("corner = %g, want 0", got)
	}
	sum := 0.0
	for _, x := range out {
		sum += x
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("sum = %g, want 1", sum)
	}
}
