// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"fmt"
	"strings"
)

// Estimator names. Every Estimator produced by an estimation
// procedure carries one of these.
const (
	NameAcc      = "acc"
	NameRho      = "rho"
	NameCCC      = "ccc"
	NameCCCUStat = "ccc_ustat"
	NameMSD      = "msd"
	NameRBS      = "rbs"
	NameCP       = "cp"
	NameTDI      = "tdi"
	NameZUStat   = "z_ustat"
)

// An OptFloat is a float64 that may be absent. It distinguishes "not
// applicable for this quantity" from a computed value, so absence is
// never encoded as NaN.
type OptFloat struct {
	V  float64
	OK bool
}

func opt(v float64) OptFloat { return OptFloat{v, true} }

// A LimitSide gives the direction of a one-sided confidence limit.
// The direction is fixed by the statistic's semantics: statistics
// where larger is better carry lower bounds, and vice versa.
type LimitSide int

const (
	LimitNone LimitSide = iota
	LimitLower
	LimitUpper
)

func (s LimitSide) String() string {
	switch s {
	case LimitNone:
		return "none"
	case LimitLower:
		return "lower"
	case LimitUpper:
		return "upper"
	}
	return fmt.Sprintf("LimitSide(%d)", int(s))
}

// An Estimator is a point estimate together with its asymptotic
// variance and one-sided confidence limit, where those are defined
// for the underlying statistic. Estimators are immutable once
// produced.
type Estimator struct {
	Name     string
	Value    float64
	Variance OptFloat
	Limit    OptFloat
	Side     LimitSide
}

func (e Estimator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %.6g", e.Name, e.Value)
	if e.Variance.OK {
		fmt.Fprintf(&sb, " (var %.6g", e.Variance.V)
		if e.Limit.OK {
			fmt.Fprintf(&sb, ", %s %.6g", e.Side, e.Limit.V)
		}
		sb.WriteByte(')')
	} else if e.Limit.OK {
		fmt.Fprintf(&sb, " (%s %.6g)", e.Side, e.Limit.V)
	}
	return sb.String()
}

// Results maps estimator names to computed Estimators. Each
// estimation procedure returns its own Results; Merge combines
// independent Results for reporting.
type Results map[string]Estimator

// Merge combines the given result sets into one. Later sets win on
// (unexpected) name collisions.
func Merge(rs ...Results) Results {
	merged := make(Results)
	for _, r := range rs {
		for name, est := range r {
			merged[name] = est
		}
	}
	return merged
}
