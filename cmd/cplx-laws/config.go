// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"neugram.io/cplx"
	"neugram.io/cplx/format"
)

type fileConfig struct {
	Tolerance  float64        `toml:"tolerance"`
	Marker     string         `toml:"marker"`
	SignedImag bool           `toml:"signed_imag"`
	Digits     int            `toml:"digits"`
	Samples    []sampleConfig `toml:"sample"`
}

type sampleConfig struct {
	Re float64 `toml:"re"`
	Im float64 `toml:"im"`
}

type lawConfig struct {
	Tolerance float64
	Format    format.Options
	Samples   []cplx.Complex
}

func defaultSamples() []cplx.Complex {
	return []cplx.Complex{
		cplx.Zero(),
		cplx.One(),
		cplx.I(),
		cplx.New(3, 4),
		cplx.New(1.03, 2.94),
		cplx.New(-2.5, 0.5),
		cplx.New(1.23, 9.324),
	}
}

func defaultLawConfig() lawConfig {
	return lawConfig{
		Tolerance: 1e-9,
		Samples:   defaultSamples(),
	}
}

func loadLawConfig(path string) (lawConfig, error) {
	cfg := defaultLawConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return lawConfig{}, fmt.Errorf("load cplx-laws config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return lawConfig{}, fmt.Errorf("load cplx-laws config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("tolerance") {
		cfg.Tolerance = raw.Tolerance
	}
	if meta.IsDefined("marker") {
		cfg.Format.Marker = strings.TrimSpace(raw.Marker)
		if cfg.Format.Marker == "" {
			return lawConfig{}, fmt.Errorf("marker must not be empty")
		}
	}
	if meta.IsDefined("signed_imag") {
		cfg.Format.SignedImag = raw.SignedImag
	}
	if meta.IsDefined("digits") {
		cfg.Format.Digits = raw.Digits
	}
	if meta.IsDefined("sample") {
		cfg.Samples = make([]cplx.Complex, 0, len(raw.Samples))
		for _, s := range raw.Samples {
			cfg.Samples = append(cfg.Samples, cplx.New(s.Re, s.Im))
		}
	}

	if err := validateLawConfig(cfg); err != nil {
		return lawConfig{}, err
	}
	return cfg, nil
}

func validateLawConfig(cfg lawConfig) error {
	if !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 1) {
		return fmt.Errorf("tolerance must be positive and finite, got %v", cfg.Tolerance)
	}
	if cfg.Format.Digits < 0 {
		return fmt.Errorf("digits must not be negative, got %d", cfg.Format.Digits)
	}
	if len(cfg.Samples) == 0 {
		return fmt.Errorf("at least one sample is required")
	}
	for i, z := range cfg.Samples {
		if !finite(z.Real()) || !finite(z.Imag()) {
			return fmt.Errorf("sample[%d] is not finite: %v", i, z)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
