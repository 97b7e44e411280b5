// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command agreestat demonstrates the agreement statistics over
// example datasets and runs Monte Carlo studies of the concordance
// correlation estimators.
//
// With -example (-e), it prints the full agreement report for each
// example dataset. With -simulation (-s), it runs a seeded CCC Monte
// Carlo study and logs the aggregate results. The two may be
// combined.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/statagree/agreestat/agree"
	"github.com/statagree/agreestat/agreesim"
)

func main() {
	var example, simulation bool
	flag.BoolVar(&example, "example", false, "print agreement reports for the example datasets")
	flag.BoolVar(&example, "e", false, "shorthand for -example")
	flag.BoolVar(&simulation, "simulation", false, "run the CCC Monte Carlo simulation")
	flag.BoolVar(&simulation, "s", false, "shorthand for -simulation")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	if !example && !simulation {
		flag.Usage()
		os.Exit(2)
	}

	if simulation {
		if err := runSimulation(context.Background()); err != nil {
			slog.Error("simulation failed", "err", err)
			os.Exit(1)
		}
	}
	if example {
		if err := runExamples(os.Stdout); err != nil {
			slog.Error("example failed", "err", err)
			os.Exit(1)
		}
	}
}

func runSimulation(ctx context.Context) error {
	cfg := agreesim.Config{
		Replicates: 5000,
		SampleSize: 20,
		Kind:       agree.KindCCC,
		Mean:       [2]float64{0, 0},
		Cov: [2][2]float64{
			{1, 0.95},
			{0.95, 1},
		},
		Seed: 1,
	}
	slog.Info("running Monte Carlo study",
		"replicates", cfg.Replicates,
		"sample_size", cfg.SampleSize,
		"kind", cfg.Kind,
		"seed", cfg.Seed)

	start := time.Now()
	summaries, err := agreesim.Run(ctx, cfg)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		slog.Info("estimator summary",
			"name", s.Name,
			"true", fmt.Sprintf("%.4f", s.True),
			"mean", fmt.Sprintf("%.4f", s.Mean),
			"stddev", fmt.Sprintf("%.4f", s.StdDev),
			"coverage", fmt.Sprintf("%.4f", s.Coverage.V),
			"failures", s.Failures)
	}
	slog.Info("study complete", "elapsed", time.Since(start))
	return nil
}
