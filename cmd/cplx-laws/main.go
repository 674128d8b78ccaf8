// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cplx-laws checks the field laws of cplx.Complex over a set
// of sample values and prints each sample with its magnitude and angle.
//
//	Usage: cplx-laws [options]
//
//	ex:
//	 $> cplx-laws
//	 $> cplx-laws -config ./cmd/cplx-laws/ex.config.toml -v
//
//	options:
//	  -config string
//	    	TOML file with tolerance, format options and [[sample]] tables
//	  -v	log every passing check
//
// The exit status is 1 if any law is violated and 2 if the
// configuration cannot be loaded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"neugram.io/cplx"
	"neugram.io/cplx/field"
	"neugram.io/cplx/internal/logging"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			`Usage: cplx-laws [options]

ex:
 $> cplx-laws
 $> cplx-laws -config ./cmd/cplx-laws/ex.config.toml -v

options:
`,
		)
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "TOML file with tolerance, format options and [[sample]] tables")
	verbose := flag.Bool("v", false, "log every passing check")

	flag.Parse()

	logging.ConfigureRuntime()
	if *verbose {
		logging.SetLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 0 {
		flag.Usage()
		log.Error().Strs("args", flag.Args()).Msg("unexpected arguments")
		os.Exit(2)
	}

	cfg := defaultLawConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadLawConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Str("path", *configPath).Msg("invalid configuration")
			os.Exit(2)
		}
	}

	n, err := run(os.Stdout, cfg)
	if err != nil {
		log.Error().Err(err).Msg("could not write report")
		os.Exit(2)
	}
	if n > 0 {
		log.Error().Int("violations", n).Msg("laws violated")
		os.Exit(1)
	}
	log.Info().Int("samples", len(cfg.Samples)).Msg("all laws hold")
}

// run prints the sample table to w and returns the number of
// violated laws.
func run(w io.Writer, cfg lawConfig) (int, error) {
	if err := printSamples(w, cfg); err != nil {
		return 0, err
	}

	approx := func(a, b cplx.Complex) bool {
		return a.ApproxEqual(b, cfg.Tolerance)
	}
	n := report("complex", field.CheckLaws(cfg.Samples, approx))

	reals := make([]field.Scalar[float64], len(cfg.Samples))
	for i, z := range cfg.Samples {
		reals[i] = field.NewScalar(z.Real())
	}
	approxReal := func(a, b field.Scalar[float64]) bool {
		return a.ApproxEqual(b, cfg.Tolerance)
	}
	n += report("real", field.CheckLaws(reals, approxReal))

	n += checkComplex(cfg.Samples)
	return n, nil
}

func printSamples(w io.Writer, cfg lawConfig) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "z\t|z|\targ")
	for _, z := range cfg.Samples {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			cfg.Format.Value(z),
			strconv.FormatFloat(z.Abs(), 'g', 12, 64),
			strconv.FormatFloat(z.Arg(), 'g', 12, 64),
		)
	}
	return tw.Flush()
}

func report[T any](kind string, vs []field.Violation[T]) int {
	for _, v := range vs {
		log.Warn().Str("kind", kind).Str("law", v.Law).Msg(v.String())
	}
	if len(vs) == 0 {
		log.Debug().Str("kind", kind).Msg("field laws hold")
	}
	return len(vs)
}

// checkComplex checks the properties specific to complex numbers.
func checkComplex(samples []cplx.Complex) int {
	n := 0
	fail := func(law string, z, got cplx.Complex) {
		n++
		log.Warn().Str("kind", "complex").Str("law", law).
			Stringer("x", z).Stringer("got", got).Msg("violation")
	}

	i := cplx.I()
	if got := i.Mul(i); !got.Equal(cplx.New(-1, 0)) {
		fail("imaginary-unit-square", i, got)
	}
	for _, z := range samples {
		if got := z.Conjugate().Conjugate(); !got.Equal(z) {
			fail("conjugate-involution", z, got)
		}
		if got := cplx.New(z.Real(), z.Imag()); !got.Equal(z) {
			fail("accessor-round-trip", z, got)
		}
	}
	if n == 0 {
		log.Debug().Str("kind", "complex").Msg("complex properties hold")
	}
	return n
}
