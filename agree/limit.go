// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"fmt"
	"math"
)

// A TransformEstimator pairs a raw point estimate and its asymptotic
// variance with the Transform that stabilizes it.
type TransformEstimator struct {
	Value    float64
	Variance float64
	T        Transform
}

// ConfidenceLimit returns the one-sided confidence bound at level
// 1-alpha on the statistic's natural scale. The bound is computed on
// the transform scale, with the variance propagated by the delta
// method, and mapped back through the transform's inverse.
func (te TransformEstimator) ConfidenceLimit(alpha float64, side LimitSide, n int) (float64, error) {
	zt, err := te.T.Apply(te.Value)
	if err != nil {
		return 0, err
	}
	d, err := te.T.Deriv(te.Value)
	if err != nil {
		return 0, err
	}
	vt := te.Variance * d * d
	q := zQuantile(1 - alpha)
	var bound float64
	switch side {
	case LimitLower:
		bound = zt - q*math.Sqrt(vt/float64(n))
	case LimitUpper:
		bound = zt + q*math.Sqrt(vt/float64(n))
	default:
		panic(fmt.Sprintf("bad LimitSide %v", side))
	}
	return te.T.Inverse(bound), nil
}

// perfectTol bounds how close an estimate may come to the edge of its
// transform's domain before the asymptotic variance formulas are
// treated as degenerate.
const perfectTol = 1e-12

// atDomainEdge reports whether value sits at the upper (or, for
// Fisher's z, either) edge of t's domain. Estimates land there only
// for perfectly agreeing samples, where the closed-form variances
// divide by zero.
func atDomainEdge(value float64, t Transform) bool {
	switch t {
	case TransformZ:
		return math.Abs(value) >= 1-perfectTol
	case TransformLogit:
		return value >= 1-perfectTol
	}
	return false
}

// limitEstimator builds an Estimator carrying a one-sided confidence
// limit under the given transform. An estimate at the edge of the
// transform's domain is clamped to a zero-variance estimator whose
// limit equals the estimate, since the variance formulas feeding this
// path are undefined there.
func limitEstimator(name string, value, variance float64, t Transform, side LimitSide, n int) (Estimator, error) {
	if atDomainEdge(value, t) {
		return Estimator{Name: name, Value: value, Variance: opt(0), Limit: opt(value), Side: side}, nil
	}
	lim, err := TransformEstimator{value, variance, t}.ConfidenceLimit(DefaultAlpha, side, n)
	if err != nil {
		return Estimator{}, err
	}
	return Estimator{Name: name, Value: value, Variance: opt(variance), Limit: opt(lim), Side: side}, nil
}
