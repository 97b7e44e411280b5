// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agreesim runs Monte Carlo studies of the agreement
// estimators over simulated bivariate normal measurement pairs.
//
// Each replicate draws an independent paired sample, invokes the
// requested estimation procedure, and contributes its point estimate
// and confidence limit to the aggregate. Replicates are independent
// Agreement instances and run in parallel; each one derives its own
// random stream from the study seed and its replicate index, so a
// study's output is bit-identical for a given seed regardless of
// scheduling.
package agreesim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/statagree/agreestat/agree"
)

// Config parameterizes a Monte Carlo study.
type Config struct {
	// Replicates is the number of independent simulated sample
	// pairs.
	Replicates int
	// SampleSize is the number of paired observations per
	// replicate.
	SampleSize int
	// Kind selects the estimation procedure run per replicate.
	Kind agree.Kind

	// Mean and Cov parameterize the bivariate normal generator:
	// Mean[0], Cov[0][0] belong to the x series and Mean[1],
	// Cov[1][1] to the y series.
	Mean [2]float64
	Cov  [2][2]float64

	// Seed fixes the replicate random streams.
	Seed uint64
	// Parallelism bounds concurrent replicates. Zero means
	// GOMAXPROCS.
	Parallelism int

	// Delta and Pi are passed through to the estimators; zero
	// keeps the package defaults.
	Delta, Pi float64
}

func (cfg *Config) validate() error {
	if cfg.Replicates <= 0 {
		return fmt.Errorf("replicates must be positive, have %d", cfg.Replicates)
	}
	if cfg.SampleSize < 4 {
		return fmt.Errorf("sample size must be at least 4, have %d", cfg.SampleSize)
	}
	if cfg.Cov[0][1] != cfg.Cov[1][0] {
		return fmt.Errorf("covariance matrix is not symmetric")
	}
	if cfg.Cov[0][0] <= 0 || cfg.Cov[1][1] <= 0 {
		return fmt.Errorf("variances must be positive")
	}
	return nil
}

// A Summary aggregates the per-replicate results for one estimator.
type Summary struct {
	Name       string
	Replicates int
	// Failures counts replicates whose draw was degenerate for
	// the estimator. They contribute nothing to the aggregates.
	Failures int

	// True is the population value of the statistic implied by
	// the generator parameters.
	True float64
	// Mean and StdDev summarize the point estimates across
	// replicates.
	Mean   float64
	StdDev float64
	// MeanLimit is the mean one-sided confidence limit, where the
	// estimator defines one.
	MeanLimit agree.OptFloat
	// Coverage is the fraction of replicates whose one-sided
	// limit covered the population value.
	Coverage agree.OptFloat
}

// Run executes the study described by cfg and returns one Summary per
// estimator the chosen Kind produces.
func Run(ctx context.Context, cfg Config) ([]Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	par := cfg.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	mu := []float64{cfg.Mean[0], cfg.Mean[1]}
	sigma := mat.NewSymDense(2, []float64{
		cfg.Cov[0][0], cfg.Cov[0][1],
		cfg.Cov[1][0], cfg.Cov[1][1],
	})

	results := make([]agree.Results, cfg.Replicates)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(par)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := rand.NewPCG(cfg.Seed, uint64(i))
			dist, ok := distmv.NewNormal(mu, sigma, src)
			if !ok {
				return fmt.Errorf("covariance matrix is not positive definite")
			}
			x := make([]float64, cfg.SampleSize)
			y := make([]float64, cfg.SampleSize)
			buf := make([]float64, 2)
			for j := range x {
				dist.Rand(buf)
				x[j], y[j] = buf[0], buf[1]
			}
			res, err := agree.Estimate(x, y, cfg.Kind, agree.Options{Delta: cfg.Delta, Pi: cfg.Pi})
			if err != nil {
				// A degenerate draw fails only its own
				// replicate.
				var degen *agree.DegenerateInputError
				var dom *agree.DomainError
				if errors.As(err, &degen) || errors.As(err, &dom) {
					return nil
				}
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var summaries []Summary
	for _, name := range kindNames(cfg.Kind) {
		summaries = append(summaries, cfg.summarize(name, results))
	}
	return summaries, nil
}

func kindNames(k agree.Kind) []string {
	switch k {
	case agree.KindCCC:
		return []string{agree.NameCCC, agree.NameCCCUStat}
	case agree.KindCP:
		return []string{agree.NameCP}
	case agree.KindTDI:
		return []string{agree.NameTDI}
	case agree.KindMSD:
		return []string{agree.NameMSD}
	}
	panic(fmt.Sprintf("bad Kind %v", k))
}

func (cfg *Config) summarize(name string, results []agree.Results) Summary {
	truth := cfg.trueValue(name)
	s := Summary{Name: name, Replicates: len(results), True: truth}

	var vals []float64
	var limitSum float64
	var limits, covered int
	for _, res := range results {
		if res == nil {
			s.Failures++
			continue
		}
		est := res[name]
		vals = append(vals, est.Value)
		if !est.Limit.OK {
			continue
		}
		limits++
		limitSum += est.Limit.V
		switch est.Side {
		case agree.LimitLower:
			if est.Limit.V <= truth {
				covered++
			}
		case agree.LimitUpper:
			if est.Limit.V >= truth {
				covered++
			}
		}
	}
	samp := stats.Sample{Xs: vals}
	s.Mean = samp.Mean()
	s.StdDev = samp.StdDev()
	if limits > 0 {
		s.MeanLimit = agree.OptFloat{V: limitSum / float64(limits), OK: true}
		s.Coverage = agree.OptFloat{V: float64(covered) / float64(limits), OK: true}
	}
	return s
}

// trueValue returns the population value of the named statistic under
// the bivariate normal generator.
func (cfg *Config) trueValue(name string) float64 {
	muD := cfg.Mean[0] - cfg.Mean[1]
	sxx, syy := cfg.Cov[0][0], cfg.Cov[1][1]
	sxy := cfg.Cov[0][1]
	varD := sxx + syy - 2*sxy
	msd := muD*muD + varD

	switch name {
	case agree.NameCCC, agree.NameCCCUStat:
		return 2 * sxy / (sxx + syy + muD*muD)
	case agree.NameMSD:
		return msd
	case agree.NameTDI:
		pi := cfg.Pi
		if pi == 0 {
			pi = agree.DefaultPi
		}
		norm := stats.NormalDist{Mu: 0, Sigma: 1}
		return norm.InvCDF(1-(1-pi)/2) * math.Sqrt(msd)
	case agree.NameCP:
		delta := cfg.Delta
		if delta == 0 {
			delta = agree.DefaultDelta
		}
		// P(|D| <= delta) for D ~ N(muD, varD).
		norm := stats.NormalDist{Mu: 0, Sigma: 1}
		sd := math.Sqrt(varD)
		return norm.CDF((delta-muD)/sd) - norm.CDF((-delta-muD)/sd)
	}
	panic(fmt.Sprintf("bad estimator name %q", name))
}
