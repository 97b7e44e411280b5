// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

var stdNormal = stats.NormalDist{Mu: 0, Sigma: 1}

// zQuantile returns the standard normal quantile at cumulative
// probability p.
func zQuantile(p float64) float64 {
	return stdNormal.InvCDF(p)
}

// ncx2CDF1 returns the CDF at x of the noncentral chi-squared
// distribution with one degree of freedom and noncentrality nc.
//
// A noncentral chi-squared variable with one degree of freedom is the
// square of a N(sqrt(nc), 1) variable, so its CDF reduces exactly to
// a difference of standard normal CDFs.
func ncx2CDF1(x, nc float64) float64 {
	if x <= 0 {
		return 0
	}
	s := math.Sqrt(x)
	m := math.Sqrt(nc)
	return stdNormal.CDF(s-m) - stdNormal.CDF(-s-m)
}
