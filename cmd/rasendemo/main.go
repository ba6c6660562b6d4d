// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

// Command rasendemo animates a small scene through a rasen engine and
// writes every repainted frame as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	rasen "github.com/rasenjs/rasen-sub000"
	"github.com/rasenjs/rasen-sub000/bounds"
	"github.com/rasenjs/rasen-sub000/frame"
	"github.com/rasenjs/rasen-sub000/ggsurface"
	"github.com/rasenjs/rasen-sub000/reactive"
	"github.com/rasenjs/rasen-sub000/region"
	"github.com/rasenjs/rasen-sub000/shape"
)

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.IntVar(&cfg.Width, "width", cfg.Width, "surface width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "surface height")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of frames to render")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frame rate")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "output file pattern")
	flag.BoolVar(&cfg.FullRedraw, "full", cfg.FullRedraw, "repaint the whole surface every frame")
	flag.BoolVar(&cfg.Realtime, "realtime", cfg.Realtime, "pace frames with a ticker")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every flush")
	flag.Parse()
	if cfg.FPS <= 0 {
		log.Fatalf("Invalid frame rate %d", cfg.FPS)
	}

	if cfg.Debug {
		rasen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	surf, err := ggsurface.NewSize(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer surf.Close()

	loop := frame.NewLoop()
	opts := []rasen.Option{rasen.WithScheduler(loop.Frames())}
	if cfg.FullRedraw {
		opts = append(opts, rasen.WithFullRedraw())
	}
	hosts := rasen.NewHosts[*gg.Context]()
	eng, err := hosts.Init(surf.Context(), surf, opts...)
	if err != nil {
		log.Fatalf("Failed to init engine: %v", err)
	}
	defer hosts.Release(surf.Context())

	sc := newScene(eng, reactive.NewRuntime(), cfg)
	dt := float32(1) / float32(cfg.FPS)

	flushes := 0
	save := func(n int) {
		if f := eng.Stats().Flushes; f != flushes {
			flushes = f
			name := fmt.Sprintf(cfg.Output, n)
			if err := surf.Context().SavePNG(name); err != nil {
				log.Fatalf("Failed to save %s: %v", name, err)
			}
		}
	}

	if cfg.Realtime {
		runRealtime(loop, cfg, func(n int) {
			save(n)
			sc.advance(dt)
		})
	} else {
		for n := 1; n <= cfg.Frames; n++ {
			sc.advance(dt)
			loop.Tick()
			save(n)
		}
	}

	st := eng.Stats()
	log.Printf("Rendered %d frames: %d flushes (%d full), %d draws\n",
		cfg.Frames, st.Flushes, st.FullRepaints, st.Draws)
}

// runRealtime ticks loop at the configured rate and calls onTick after
// each tick until enough frames were produced.
func runRealtime(loop *frame.Loop, cfg *Config, onTick func(n int)) {
	tk, err := frame.NewTicker(loop, cfg.FPS)
	if err != nil {
		log.Fatalf("Failed to create ticker: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tk.OnTick(func(n int) {
		onTick(n)
		if n >= cfg.Frames {
			cancel()
		}
	})
	if err := tk.Run(ctx); !errors.Is(err, context.Canceled) {
		log.Fatalf("Ticker stopped: %v", err)
	}
}

// scene is a ball sliding across the surface, a spinning star and a
// pulsing group of bars.
type scene struct {
	rt *reactive.Runtime

	ballX  *reactive.Signal[float64]
	spin   *reactive.Signal[float64]
	pulse  *reactive.Signal[float64]
	slide  *gween.Tween
	rotate *gween.Tween
	bars   *gween.Tween
}

func newScene(eng *rasen.Engine, rt *reactive.Runtime, cfg *Config) *scene {
	w, h := float64(cfg.Width), float64(cfg.Height)
	sc := &scene{
		rt:     rt,
		ballX:  reactive.NewSignal(rt, 40.0),
		spin:   reactive.NewSignal(rt, 0.0),
		pulse:  reactive.NewSignal(rt, 1.0),
		slide:  gween.New(40, float32(w-40), cfg.Duration, ease.InOutQuad),
		rotate: gween.New(0, 2*math.Pi, cfg.Duration, ease.Linear),
		bars:   gween.New(1, 0.4, cfg.Duration, ease.OutBounce),
	}

	shape.Mount(eng, rt, func() shape.Shape {
		return shape.Rect{
			Style: shape.Style{Fill: gg.RGB(0.12, 0.13, 0.18)},
			Width: w, Height: h,
		}
	})
	shape.Mount(eng, rt, func() shape.Shape {
		return shape.Circle{
			Style: shape.Style{
				Fill:   gg.RGB(0.95, 0.35, 0.3),
				Shadow: &shape.ShadowStyle{Color: gg.RGBA2(0, 0, 0, 0.5), Blur: 4, OffsetX: 6, OffsetY: 6},
			},
			CX: sc.ballX.Get(), CY: h / 4, R: 24,
		}
	})
	shape.Mount(eng, rt, func() shape.Shape {
		return shape.Star{
			Style: shape.Style{
				Fill:      gg.RGB(1, 0.85, 0.2),
				Stroke:    gg.RGB(1, 1, 1),
				LineWidth: 2,
			},
			CX: w / 2, CY: h / 2, Points: 5,
			OuterRadius: 50, InnerRadius: 22,
			Rotation: sc.spin.Get(),
		}
	})

	clip := region.XYWH(w-200, h-120, 160, 90)
	shape.MountGroup(eng, rt,
		func() shape.GroupProps {
			return shape.GroupProps{
				Clip:      &clip,
				Opacity:   0.9,
				Transform: &bounds.Transform{ScaleY: bounds.Factor(sc.pulse.Get())},
			}
		},
		func() {
			for i := range 4 {
				x := clip.X + 10 + float64(i)*38
				shape.Mount(eng, rt, func() shape.Shape {
					return shape.Rect{
						Style:  shape.Style{Fill: gg.HSL(float64(i)*60, 0.7, 0.55)},
						X:      x, Y: clip.Y + 10, Width: 28, Height: clip.Height - 20,
						Radius: 4,
					}
				})
			}
		})
	return sc
}

// advance moves every tween by dt and publishes the new values in one batch.
func (sc *scene) advance(dt float32) {
	x, _ := sc.slide.Update(dt)
	a, _ := sc.rotate.Update(dt)
	p, _ := sc.bars.Update(dt)
	sc.rt.Batch(func() {
		sc.ballX.Set(float64(x))
		sc.spin.Set(float64(a))
		sc.pulse.Set(float64(p))
	})
}
