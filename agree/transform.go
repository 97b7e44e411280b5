// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"fmt"
	"math"
)

// A Transform is a variance-stabilizing bijection. Confidence limits
// are computed on the transform scale, where the sampling distribution
// of an estimator is closer to normal, and mapped back to the natural
// scale of the statistic.
type Transform int

const (
	// TransformZ is Fisher's z transform, atanh, for
	// correlation-like statistics in (-1, 1).
	TransformZ Transform = iota
	// TransformLogit is the log-odds transform for probabilities
	// in (0, 1).
	TransformLogit
	// TransformLog is the natural logarithm for positive scale
	// statistics.
	TransformLog
)

func (t Transform) String() string {
	switch t {
	case TransformZ:
		return "z"
	case TransformLogit:
		return "logit"
	case TransformLog:
		return "log"
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// Apply maps x from the statistic's natural domain to the transform
// scale. If x is outside the transform's domain it returns a
// *DomainError rather than a silent NaN.
func (t Transform) Apply(x float64) (float64, error) {
	if err := t.check(x); err != nil {
		return 0, err
	}
	switch t {
	case TransformZ:
		return math.Atanh(x), nil
	case TransformLogit:
		return math.Log(x / (1 - x)), nil
	case TransformLog:
		return math.Log(x), nil
	}
	panic(fmt.Sprintf("bad Transform %v", t))
}

// Inverse maps y on the transform scale back to the natural scale.
// It is total: every real y maps into the transform's domain.
func (t Transform) Inverse(y float64) float64 {
	switch t {
	case TransformZ:
		return math.Tanh(y)
	case TransformLogit:
		return 1 / (1 + math.Exp(-y))
	case TransformLog:
		return math.Exp(y)
	}
	panic(fmt.Sprintf("bad Transform %v", t))
}

// Deriv returns the first derivative of Apply at x, used for
// delta-method variance scaling. Like Apply, it returns a
// *DomainError outside the transform's domain.
func (t Transform) Deriv(x float64) (float64, error) {
	if err := t.check(x); err != nil {
		return 0, err
	}
	switch t {
	case TransformZ:
		return 1 / (1 - x*x), nil
	case TransformLogit:
		return 1 / (x * (1 - x)), nil
	case TransformLog:
		return 1 / x, nil
	}
	panic(fmt.Sprintf("bad Transform %v", t))
}

func (t Transform) check(x float64) error {
	var ok bool
	switch t {
	case TransformZ:
		ok = -1 < x && x < 1
	case TransformLogit:
		ok = 0 < x && x < 1
	case TransformLog:
		ok = x > 0
	default:
		panic(fmt.Sprintf("bad Transform %v", t))
	}
	if !ok {
		return &DomainError{Op: t.String() + " transform", X: x}
	}
	return nil
}
