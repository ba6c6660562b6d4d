// Copyright 2026 The Rasen Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo settings. Every field can be set from the
// environment and overridden by the matching flag.
type Config struct {
	Width      int     `envconfig:"RASEN_WIDTH" default:"640"`
	Height     int     `envconfig:"RASEN_HEIGHT" default:"360"`
	Frames     int     `envconfig:"RASEN_FRAMES" default:"60"`
	FPS        int     `envconfig:"RASEN_FPS" default:"30"`
	Output     string  `envconfig:"RASEN_OUTPUT" default:"frame-%03d.png"`
	FullRedraw bool    `envconfig:"RASEN_FULL_REDRAW" default:"false"`
	Realtime   bool    `envconfig:"RASEN_REALTIME" default:"false"`
	Debug      bool    `envconfig:"RASEN_DEBUG" default:"false"`
	Duration   float32 `envconfig:"RASEN_TWEEN_SECONDS" default:"1.5"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
