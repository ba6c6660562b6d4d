// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package region

import (
	"image"
	"math/rand"
	"testing"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", XYWH(0, 0, 10, 10), XYWH(5, 5, 10, 10), true},
		{"contained", XYWH(0, 0, 100, 100), XYWH(10, 10, 5, 5), true},
		{"shared vertical edge", XYWH(0, 0, 10, 10), XYWH(10, 0, 10, 10), false},
		{"shared horizontal edge", XYWH(0, 0, 10, 10), XYWH(0, 10, 10, 10), false},
		{"shared corner", XYWH(0, 0, 10, 10), XYWH(10, 10, 10, 10), false},
		{"disjoint", XYWH(0, 0, 50, 50), XYWH(200, 0, 50, 50), false},
		{"zero width", XYWH(5, 0, 0, 10), XYWH(0, 0, 10, 10), false},
		{"fractional overlap", XYWH(0, 0, 10, 10), XYWH(9.5, 0, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestMergeAllEmpty(t *testing.T) {
	if r, ok := MergeAll(nil); ok {
		t.Errorf("MergeAll(nil) = %v, true; want false", r)
	}
	if _, ok := MergeAll([]Rect{}); ok {
		t.Error("MergeAll([]) should report no region")
	}
}

func TestMergeAllEnvelope(t *testing.T) {
	rs := []Rect{
		XYWH(50, 50, 50, 50),
		XYWH(150, 50, 50, 50),
		XYWH(-10, 80, 5, 100),
	}
	got, ok := MergeAll(rs)
	if !ok {
		t.Fatal("MergeAll returned no region")
	}
	want := FromEdges(-10, 50, 200, 180)
	if got != want {
		t.Errorf("MergeAll() = %v, want %v", got, want)
	}
}

func TestMergeAllSingle(t *testing.T) {
	r := XYWH(1, 2, 3, 4)
	got, ok := MergeAll([]Rect{r})
	if !ok || got != r {
		t.Errorf("MergeAll([%v]) = %v, %v; want %v, true", r, got, ok, r)
	}
}

func TestMergeAllOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(12)
		rs := make([]Rect, n)
		for i := range rs {
			rs[i] = XYWH(
				float64(rng.Intn(400)-100),
				float64(rng.Intn(400)-100),
				float64(rng.Intn(80)),
				float64(rng.Intn(80)),
			)
		}
		want, _ := MergeAll(rs)

		shuffled := append([]Rect(nil), rs...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, _ := MergeAll(shuffled)
		if got != want {
			t.Fatalf("round %d: MergeAll(shuffled) = %v, want %v", round, got, want)
		}
		for _, r := range rs {
			if !got.Contains(r) {
				t.Fatalf("round %d: merged %v does not contain %v", round, got, r)
			}
		}
	}
}

func TestUnion(t *testing.T) {
	got := Union(XYWH(0, 0, 10, 10), XYWH(20, 5, 10, 10))
	if want := FromEdges(0, 0, 30, 15); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestRectIntersect(t *testing.T) {
	got, ok := XYWH(0, 0, 10, 10).Intersect(XYWH(5, 5, 10, 10))
	if !ok || got != XYWH(5, 5, 5, 5) {
		t.Errorf("Intersect() = %v, %v; want {5,5 5x5}, true", got, ok)
	}
	if _, ok := XYWH(0, 0, 10, 10).Intersect(XYWH(10, 0, 10, 10)); ok {
		t.Error("edge-adjacent rectangles should not produce an intersection")
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		r    Rect
		d    float64
		want Rect
	}{
		{XYWH(10, 10, 20, 20), 2, XYWH(12, 12, 16, 16)},
		{XYWH(10, 10, 20, 20), -5, XYWH(5, 5, 30, 30)},
		{XYWH(0, 0, 10, 10), 8, XYWH(5, 5, 0, 0)},
	}
	for _, tt := range tests {
		if got := tt.r.Inset(tt.d); got != tt.want {
			t.Errorf("%v.Inset(%g) = %v, want %v", tt.r, tt.d, got, tt.want)
		}
	}
}

func TestRectPixelsRoundsOutward(t *testing.T) {
	got := XYWH(10.2, 5.9, 3.1, 0.2).Pixels()
	want := image.Rect(10, 5, 14, 7)
	if got != want {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero Rect should be empty")
	}
	if XYWH(0, 0, 1, 1).Empty() {
		t.Error("1x1 Rect should not be empty")
	}
}
