// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"image"

	"github.com/gogpu/gg"
)

// RGBAView exposes a pixmap's bytes as an image.RGBA without copying.
// Writes through the view change the pixmap.
func RGBAView(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// ClearRect makes the pixels of pm inside r transparent.
func ClearRect(pm *gg.Pixmap, r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, pm.Width(), pm.Height()))
	if r.Empty() {
		return
	}
	data := pm.Data()
	stride := pm.Width() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(data[y*stride+r.Min.X*4 : y*stride+r.Max.X*4])
	}
}
