// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"

	"github.com/rasenjs/rasen-sub000/region"
)

// Common errors returned by Surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")

	// ErrNilContext is returned when a nil gg.Context is wrapped.
	ErrNilContext = errors.New("ggsurface: nil context")
)

// Option configures a Surface during creation.
type Option func(*Surface)

// WithTexture uploads the surface pixels to t after every repaint.
// The texture usually comes from a gpucontext integration such as
// ggcanvas; it must match the surface dimensions.
func WithTexture(t gpucontext.TextureUpdater) Option {
	return func(s *Surface) {
		s.texture = t
	}
}

// Surface adapts a gg.Context to the engine's Surface interface.
//
// Region repaints are exact: BeginRegion hands out a scratch context, and
// EndRegion copies only the pixels inside the region back to the target.
// Drawables that straddle the region edge are therefore never painted twice
// outside it, which matters for translucent fills.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	ctx     *gg.Context
	owned   bool
	scratch *gg.Context
	region  image.Rectangle
	active  bool
	texture gpucontext.TextureUpdater
	dirty   bool
	closed  bool
}

// New wraps dc. The caller keeps ownership of dc; Close does not close it.
func New(dc *gg.Context, opts ...Option) (*Surface, error) {
	if dc == nil {
		return nil, ErrNilContext
	}
	s := &Surface{ctx: dc}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewSize creates a surface backed by a new gg.Context of the given size.
func NewSize(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s, err := New(gg.NewContext(width, height), opts...)
	if err != nil {
		return nil, err
	}
	s.owned = true
	return s, nil
}

// MustNewSize is like NewSize but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNewSize(width, height int, opts ...Option) *Surface {
	s, err := NewSize(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Context returns the target drawing context.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// Size implements rasen.Surface.
func (s *Surface) Size() (width, height int) {
	return s.ctx.Width(), s.ctx.Height()
}

// Clear implements rasen.Surface. It erases the target and resets its
// transform and clip.
func (s *Surface) Clear() *gg.Context {
	s.ctx.Identity()
	s.ctx.ResetClip()
	s.ctx.Clear()
	s.dirty = true
	return s.ctx
}

// BeginRegion implements rasen.Surface. Drawing goes to a scratch context
// whose region pixels start transparent.
func (s *Surface) BeginRegion(r region.Rect) *gg.Context {
	w, h := s.Size()
	if s.scratch == nil || s.scratch.Width() != w || s.scratch.Height() != h {
		s.scratch = gg.NewContext(w, h)
	}
	s.region = r.Pixels().Intersect(image.Rect(0, 0, w, h))
	s.active = true

	ClearRect(s.scratch.ResizeTarget(), s.region)
	s.scratch.Identity()
	s.scratch.ResetClip()
	s.scratch.Push()
	s.scratch.ClipRect(
		float64(s.region.Min.X), float64(s.region.Min.Y),
		float64(s.region.Dx()), float64(s.region.Dy()))
	return s.scratch
}

// EndRegion implements rasen.Surface. It replaces the region of the target
// with the region of the scratch context.
func (s *Surface) EndRegion() {
	if !s.active {
		return
	}
	s.active = false
	s.scratch.Pop()
	// Non-fatal: CPU-rendered content is already in the pixmap.
	_ = s.scratch.FlushGPU()

	if s.region.Empty() {
		return
	}
	dst := RGBAView(s.ctx.ResizeTarget())
	src := RGBAView(s.scratch.ResizeTarget())
	draw.Draw(dst, s.region, src, s.region.Min, draw.Src)
	s.dirty = true
}

// Present implements rasen.Presenter. It uploads the pixels to the GPU
// texture, if one was configured, when they changed since the last upload.
func (s *Surface) Present() error {
	if s.texture == nil || !s.dirty {
		return nil
	}
	_ = s.ctx.FlushGPU()
	if err := s.texture.UpdateData(s.ctx.ResizeTarget().Data()); err != nil {
		return fmt.Errorf("ggsurface: texture update failed: %w", err)
	}
	s.dirty = false
	return nil
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	_ = s.ctx.FlushGPU()
	return s.ctx.ResizeTarget().ToImage()
}

// Close releases the scratch buffer and, for surfaces created with
// NewSize, the target context. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.scratch != nil {
		_ = s.scratch.Close()
		s.scratch = nil
	}
	if s.owned {
		return s.ctx.Close()
	}
	return nil
}
