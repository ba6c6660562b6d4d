// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

func round(v float64) int {
	return int(math.Round(v))
}

func blurRadius(blur float64) int {
	return round(math.Abs(blur))
}

// castShadow paints the silhouette of src's pixels inside box onto dst,
// tinted with c, blurred with a box filter of radius rad and moved by off.
func castShadow(dst, src *image.RGBA, box image.Rectangle, c gg.RGBA, rad int, off image.Point) {
	area := box.Inset(-rad)
	w, h := area.Dx(), area.Dy()
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}

	alpha := make([]float64, w*h)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			a := src.Pix[src.PixOffset(x, y)+3]
			alpha[(y-area.Min.Y)*w+(x-area.Min.X)] = float64(a) / 255
		}
	}
	if rad > 0 {
		alpha = boxBlur(alpha, w, h, rad)
	}

	target := dst.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := alpha[y*w+x] * c.A
			if a <= 0 {
				continue
			}
			p := image.Pt(area.Min.X+x+off.X, area.Min.Y+y+off.Y)
			if !p.In(target) {
				continue
			}
			i := dst.PixOffset(p.X, p.Y)
			px := dst.Pix[i : i+4 : i+4]
			k := 1 - a
			px[0] = blend(c.R*a, px[0], k)
			px[1] = blend(c.G*a, px[1], k)
			px[2] = blend(c.B*a, px[2], k)
			px[3] = blend(a, px[3], k)
		}
	}
}

// blend is premultiplied source-over for one channel.
func blend(src float64, dst uint8, k float64) uint8 {
	v := src*255 + float64(dst)*k
	return uint8(math.Min(255, math.Max(0, math.Round(v))))
}

// boxBlur averages each value with its neighbours within rad, first along
// rows and then along columns.
func boxBlur(v []float64, w, h, rad int) []float64 {
	tmp := make([]float64, len(v))
	out := make([]float64, len(v))
	n := float64(2*rad + 1)
	for y := 0; y < h; y++ {
		row := v[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := x - rad; k <= x+rad; k++ {
				if k >= 0 && k < w {
					sum += row[k]
				}
			}
			tmp[y*w+x] = sum / n
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sum := 0.0
			for k := y - rad; k <= y+rad; k++ {
				if k >= 0 && k < h {
					sum += tmp[k*w+x]
				}
			}
			out[y*w+x] = sum / n
		}
	}
	return out
}
