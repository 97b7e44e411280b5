// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agree computes agreement statistics between two paired
// measurement series, such as two instruments or raters measuring the
// same subjects.
//
// It implements the concordance correlation coefficient by Lin's
// delta-method approximation and by the King–Chinchilli U-statistic
// estimator, and the mean squared deviation, coverage probability,
// and total deviation index of the paired differences. Each statistic
// comes with a closed-form asymptotic variance and a one-sided
// confidence limit computed under a variance-stabilizing transform.
//
// References:
//
//	Lin LI. A concordance correlation coefficient to evaluate
//	reproducibility. Biometrics. 1989;45(1):255-268.
//
//	Lin LI. Total deviation index for measuring individual agreement
//	with applications in laboratory performance and bioequivalence.
//	Statistics in Medicine. 2000;19(2):255-270.
//
//	King TS, Chinchilli VM. Robust estimators of the concordance
//	correlation coefficient. J Biopharm Stat. 2001;11(3):83-105.
package agree

import (
	"fmt"
	"math"
	"slices"

	mfstats "github.com/montanaflynn/stats"
)

const (
	// DefaultAlpha is the level of the one-sided confidence limits.
	DefaultAlpha = 0.05
	// DefaultDelta is the coverage probability tolerance criterion.
	DefaultDelta = 0.5
	// DefaultPi is the total deviation index coverage criterion.
	DefaultPi = 0.9
)

// An Agreement holds two paired measurement series and the criteria
// its estimation procedures evaluate against. The series are copied
// at construction and never modified; the estimation procedures are
// independent, idempotent, and safe to call in any order.
type Agreement struct {
	x, y []float64
	n    int

	// Delta is the tolerance criterion for the coverage
	// probability: the clinically acceptable absolute difference
	// between paired measurements.
	Delta float64
	// Pi is the target coverage for the total deviation index.
	Pi float64
}

// New constructs an Agreement over the paired series x and y with the
// default criteria. The series must have equal length; length and
// degeneracy minimums are checked by each estimation procedure, which
// need different ones.
func New(x, y []float64) (*Agreement, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched sample lengths %d and %d", len(x), len(y))
	}
	return &Agreement{
		x:     slices.Clone(x),
		y:     slices.Clone(y),
		n:     len(x),
		Delta: DefaultDelta,
		Pi:    DefaultPi,
	}, nil
}

// N returns the number of paired observations.
func (a *Agreement) N() int { return a.n }

// moments returns the sample means and the biased (population)
// variances and covariance of the two series.
func (a *Agreement) moments() (muX, muY, sxx, syy, sxy float64, err error) {
	if muX, err = mfstats.Mean(a.x); err != nil {
		return
	}
	if muY, err = mfstats.Mean(a.y); err != nil {
		return
	}
	if sxx, err = mfstats.PopulationVariance(a.x); err != nil {
		return
	}
	if syy, err = mfstats.PopulationVariance(a.y); err != nil {
		return
	}
	sxy, err = mfstats.CovariancePopulation(a.x, a.y)
	return
}

// CCCApprox computes Lin's concordance correlation coefficient and
// its precision (rho) and accuracy components, each with a
// delta-method asymptotic variance and a lower confidence limit. It
// returns the acc, rho and ccc estimators.
//
// It fails with a *SampleSizeError for fewer than 4 pairs and a
// *DegenerateInputError when either series is constant or the two are
// uncorrelated (the ccc variance divides by rho).
func (a *Agreement) CCCApprox() (Results, error) {
	const op = "ccc approximation"
	if a.n < 4 {
		return nil, &SampleSizeError{Op: op, N: a.n, Min: 4}
	}
	muX, muY, sxx, syy, sxy, err := a.moments()
	if err != nil {
		return nil, err
	}
	if sxx == 0 || syy == 0 {
		return nil, &DegenerateInputError{Op: op, Reason: "constant series has zero variance"}
	}

	n := float64(a.n)
	muD := muX - muY
	sqrVar := math.Sqrt(sxx * syy)
	rho := sxy / sqrVar
	if rho == 0 {
		return nil, &DegenerateInputError{Op: op, Reason: "zero covariance between series"}
	}
	nuSq := muD * muD / sqrVar
	omega := math.Sqrt(sxx / syy)

	acc := 2 * sqrVar / (sxx + syy + muD*muD)
	varAcc := (acc*acc*nuSq*(omega+1/omega-2*rho) +
		0.5*acc*acc*(omega*omega+1/(omega*omega)+2*rho*rho) +
		(1+rho*rho)*(acc*nuSq-1)) /
		((n - 2) * (1 - acc) * (1 - acc))

	varRho := (1 - rho*rho/2) / (n - 3)

	ccc := acc * rho
	varCCC := 1 / (n - 2) *
		((1-rho*rho)*ccc*ccc/((1-ccc*ccc)*rho*rho) +
			2*ccc*ccc*ccc*(1-ccc)*nuSq/(rho*(1-ccc*ccc)*(1-ccc*ccc)) -
			ccc*ccc*ccc*ccc*nuSq*nuSq/(2*rho*rho*(1-ccc*ccc)*(1-ccc*ccc)))

	accEst, err := limitEstimator(NameAcc, acc, varAcc, TransformLogit, LimitLower, a.n)
	if err != nil {
		return nil, err
	}
	rhoEst, err := limitEstimator(NameRho, rho, varRho, TransformZ, LimitLower, a.n)
	if err != nil {
		return nil, err
	}
	cccEst, err := limitEstimator(NameCCC, ccc, varCCC, TransformZ, LimitLower, a.n)
	if err != nil {
		return nil, err
	}
	return Results{NameAcc: accEst, NameRho: rhoEst, NameCCC: cccEst}, nil
}

// CCCUStat computes the King–Chinchilli U-statistic estimator of the
// concordance correlation coefficient, which is robust to departures
// from normality. It returns the ccc_ustat estimator with a lower
// confidence limit on the natural scale, and the z_ustat estimator
// holding the Fisher-z scale value and variance with no limit.
//
// It fails with a *SampleSizeError for fewer than 3 pairs and a
// *DegenerateInputError when the U-statistic combinations h or g
// vanish.
func (a *Agreement) CCCUStat() (Results, error) {
	const op = "ccc u-statistic"
	if a.n < 3 {
		return nil, &SampleSizeError{Op: op, N: a.n, Min: 3}
	}

	n := float64(a.n)
	xy := make([]float64, a.n)
	var sx, sy, ssx, ssy, sxy float64
	for i := range a.x {
		xi, yi := a.x[i], a.y[i]
		sx += xi
		sy += yi
		ssx += xi * xi
		ssy += yi * yi
		xy[i] = xi * yi
		sxy += xy[i]
	}

	u1 := -4 / n * sxy
	u2 := 2 / n * (ssx + ssy)
	u3 := -4 / (n * (n - 1)) * (sx*sy - sxy)

	h := (n - 1) * (u3 - u1)
	g := u1 + n*u2 + (n-1)*u3
	if h == 0 || g == 0 {
		return nil, &DegenerateInputError{Op: op, Reason: "u-statistic combination is zero"}
	}

	// Per-observation influence values and their cross moments.
	var p11, p22, p33, p12, p13, p23 float64
	for i := range a.x {
		xi, yi := a.x[i], a.y[i]
		psi1 := (n-2)*xy[i] + sxy/n
		psi2 := (n - 2) * (xi*xi - ssx/n + yi*yi - ssy/n)
		psi3 := xi*sy + yi*sx - sx*sy/n + 2*xy[i] + sxy/n
		p11 += psi1 * psi1
		p22 += psi2 * psi2
		p33 += psi3 * psi3
		p12 += psi1 * psi2
		p13 += psi1 * psi3
		p23 += psi2 * psi3
	}
	norm := n * n * (n - 1) * (n - 1)
	vU1 := 64 * p11 / norm
	vU2 := 4 * p22 / norm
	vU3 := 64 * p33 / norm
	covU1U2 := -16 * p12 / norm
	covU1U3 := 64 * p13 / norm
	covU2U3 := -16 * p23 / norm

	vH := (n - 1) * (n - 1) * (vU3 + vU1 - 2*covU1U3)
	vG := vU1 + n*n*vU2 + (n-1)*(n-1)*vU3 +
		2*n*covU1U2 + 2*(n-1)*covU1U3 + 2*n*(n-1)*covU2U3
	covHG := (n - 1) * (-(n-2)*covU1U3 + n*covU2U3 + (n-1)*vU3 - vU1 - n*covU1U2)

	ccc := h / g
	varCCC := ccc * ccc * (vH/(h*h) - 2*covHG/(h*g) + vG/(g*g))
	varZ := varCCC / ((1 - ccc*ccc) * (1 - ccc*ccc))

	// The limit is computed from the Fisher-z scale variance; the
	// reported variance stays on the natural scale.
	cccEst, err := limitEstimator(NameCCCUStat, ccc, varZ, TransformZ, LimitLower, a.n)
	if err != nil {
		return nil, err
	}
	if atDomainEdge(ccc, TransformZ) {
		// Clamped perfect concordance.
		varCCC = 0
		varZ = 0
	}
	cccEst.Variance = opt(varCCC)

	zEst := Estimator{
		Name:     NameZUStat,
		Value:    math.Atanh(ccc),
		Variance: opt(varZ),
		Side:     LimitNone,
	}
	if atDomainEdge(ccc, TransformZ) {
		// The Fisher z of a perfect concordance is infinite;
		// report it as such rather than fabricating a finite z.
		zEst.Value = math.Inf(int(math.Copysign(1, ccc)))
	}
	return Results{NameCCCUStat: cccEst, NameZUStat: zEst}, nil
}

// CPTDIApprox computes the mean squared deviation, relative bias
// squared, coverage probability at the Delta criterion, and total
// deviation index at the Pi criterion, from the difference series
// x - y. It returns the msd, rbs, cp and tdi estimators: msd with an
// upper limit on the log scale, cp with a lower limit on the logit
// scale, tdi with an upper limit derived from msd's, and rbs as a
// point estimate only.
//
// It fails with a *SampleSizeError for fewer than 4 pairs, a
// *DegenerateInputError when the differences have no variance
// (identical or constant-offset series), and a *DomainError when the
// coverage probability estimate reaches exactly 0 or 1, where its
// variance formula is undefined.
func (a *Agreement) CPTDIApprox() (Results, error) {
	const op = "cp/tdi approximation"
	if a.n < 4 {
		return nil, &SampleSizeError{Op: op, N: a.n, Min: 4}
	}
	muX, muY, sxx, syy, sxy, err := a.moments()
	if err != nil {
		return nil, err
	}
	n := float64(a.n)
	sSqD := n / (n - 3) * (sxx + syy - 2*sxy)
	if sSqD <= 0 {
		return nil, &DegenerateInputError{Op: op, Reason: "differences have no variance"}
	}
	muD := muX - muY

	var sumDSq float64
	for i := range a.x {
		d := a.x[i] - a.y[i]
		sumDSq += d * d
	}
	msd := sumDSq / (n - 1)
	varMSD := 2 / (n - 2) * (1 - muD*muD*muD*muD/(msd*msd))
	msdEst, err := limitEstimator(NameMSD, msd, varMSD, TransformLog, LimitUpper, a.n)
	if err != nil {
		return nil, err
	}

	rbs := muD * muD / sSqD
	rbsEst := Estimator{Name: NameRBS, Value: rbs, Side: LimitNone}

	sd := math.Sqrt(sSqD)
	deltaPlus := (a.Delta + muD) / sd
	nDeltaPlus := stdNormal.PDF(-deltaPlus)
	deltaMinus := (a.Delta - muD) / sd
	nDeltaMinus := stdNormal.PDF(deltaMinus)

	cp := ncx2CDF1(a.Delta, rbs)
	if cp <= 0 || cp >= 1 {
		return nil, &DomainError{Op: op + ": coverage probability", X: cp}
	}
	sum := deltaPlus*nDeltaPlus + deltaMinus*nDeltaMinus
	diff := nDeltaPlus - nDeltaMinus
	varCP := 0.5 * (sum*sum + diff*diff) /
		((n - 3) * (1 - cp) * (1 - cp) * cp * cp)
	cpEst, err := limitEstimator(NameCP, cp, varCP, TransformLogit, LimitLower, a.n)
	if err != nil {
		return nil, err
	}

	coeff := zQuantile(1 - (1-a.Pi)/2)
	tdiEst := Estimator{
		Name:  NameTDI,
		Value: coeff * math.Sqrt(msd),
		Limit: opt(coeff * math.Sqrt(msdEst.Limit.V)),
		Side:  LimitUpper,
	}

	return Results{
		NameMSD: msdEst,
		NameRBS: rbsEst,
		NameCP:  cpEst,
		NameTDI: tdiEst,
	}, nil
}
