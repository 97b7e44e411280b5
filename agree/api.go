// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import "fmt"

// A Kind names one of the top-level agreement statistics.
type Kind int

const (
	KindCCC Kind = iota
	KindCP
	KindTDI
	KindMSD
)

func (k Kind) String() string {
	switch k {
	case KindCCC:
		return "ccc"
	case KindCP:
		return "cp"
	case KindTDI:
		return "tdi"
	case KindMSD:
		return "msd"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Options carries the optional criteria of the estimation procedures.
// A zero field keeps its default.
type Options struct {
	Delta float64 // CP tolerance criterion; DefaultDelta if zero
	Pi    float64 // TDI coverage criterion; DefaultPi if zero
}

// Estimate computes the statistic named by kind over the paired
// series x and y and returns its estimators.
func Estimate(x, y []float64, kind Kind, opts Options) (Results, error) {
	a, err := New(x, y)
	if err != nil {
		return nil, err
	}
	if opts.Delta != 0 {
		a.Delta = opts.Delta
	}
	if opts.Pi != 0 {
		a.Pi = opts.Pi
	}
	switch kind {
	case KindCCC:
		approx, err := a.CCCApprox()
		if err != nil {
			return nil, err
		}
		ustat, err := a.CCCUStat()
		if err != nil {
			return nil, err
		}
		return Results{
			NameCCC:      approx[NameCCC],
			NameCCCUStat: ustat[NameCCCUStat],
		}, nil
	case KindCP:
		res, err := a.CPTDIApprox()
		if err != nil {
			return nil, err
		}
		return Results{NameCP: res[NameCP]}, nil
	case KindTDI:
		res, err := a.CPTDIApprox()
		if err != nil {
			return nil, err
		}
		return Results{NameTDI: res[NameTDI]}, nil
	case KindMSD:
		res, err := a.CPTDIApprox()
		if err != nil {
			return nil, err
		}
		return Results{NameMSD: res[NameMSD]}, nil
	}
	panic(fmt.Sprintf("bad Kind %v", kind))
}

// CCC returns the delta-method and U-statistic concordance
// correlation estimators for x and y.
func CCC(x, y []float64) (Results, error) {
	return Estimate(x, y, KindCCC, Options{})
}

// CP returns the coverage probability estimator at tolerance delta.
func CP(x, y []float64, delta float64) (Estimator, error) {
	res, err := Estimate(x, y, KindCP, Options{Delta: delta})
	if err != nil {
		return Estimator{}, err
	}
	return res[NameCP], nil
}

// TDI returns the total deviation index estimator at target
// coverage pi.
func TDI(x, y []float64, pi float64) (Estimator, error) {
	res, err := Estimate(x, y, KindTDI, Options{Pi: pi})
	if err != nil {
		return Estimator{}, err
	}
	return res[NameTDI], nil
}

// MSD returns the mean squared deviation estimator.
func MSD(x, y []float64) (Estimator, error) {
	res, err := Estimate(x, y, KindMSD, Options{})
	if err != nil {
		return Estimator{}, err
	}
	return res[NameMSD], nil
}
