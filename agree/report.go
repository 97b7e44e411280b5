// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

const (
	// withinSampleDeviation is the acceptable total deviation
	// within a sample, which implies the concordance acceptance
	// threshold 1 - withinSampleDeviation².
	withinSampleDeviation = 0.15
	// cpAllowanceLevel is the coverage probability a method pair
	// must reach to be considered in agreement.
	cpAllowanceLevel = 0.9
	// tdiAllowanceLevel is the largest acceptable total deviation
	// index.
	tdiAllowanceLevel = 10
)

// reportNames lists the rows of a full agreement report in display
// order. The z_ustat estimator is available programmatically but
// excluded from the table.
var reportNames = []string{
	NameAcc, NameRho, NameCCC, NameCCCUStat,
	NameMSD, NameRBS, NameCP, NameTDI,
}

// A Row is one line of an agreement report: an estimator with the
// decision criterion and allowance attached where those apply.
type Row struct {
	Name     string
	Value    float64
	Variance OptFloat
	Limit    OptFloat
	Side     LimitSide

	// Criterion is the criterion parameter the row was estimated
	// against: the cp row carries the delta tolerance and the tdi
	// row the pi coverage target.
	Criterion OptFloat
	// Allowance is the numeric decision threshold for the row,
	// where one applies.
	Allowance OptFloat
	// Admissible classifies the CP/TDI approximation regime from
	// the relative bias squared. It is meaningful only on the rbs
	// row, where AdmissibleOK is true.
	Admissible   bool
	AdmissibleOK bool
}

// A Report is the fixed agreement report table.
type Report struct {
	Rows []Row
}

// NewReport assembles the computed estimators in res into the report
// table. All three estimation procedures must have contributed their
// results first; a missing row is reported as a *MissingResultError.
// delta and pi are the criteria the estimators were computed against.
func NewReport(res Results, delta, pi float64) (*Report, error) {
	rows := make([]Row, 0, len(reportNames))
	for _, name := range reportNames {
		est, ok := res[name]
		if !ok {
			return nil, &MissingResultError{Name: name}
		}
		row := Row{
			Name:     name,
			Value:    est.Value,
			Variance: est.Variance,
			Limit:    est.Limit,
			Side:     est.Side,
		}
		switch name {
		case NameCCC, NameCCCUStat:
			row.Allowance = opt(1 - withinSampleDeviation*withinSampleDeviation)
		case NameRBS:
			row.Admissible = CPTDIAllowance(est.Value, cpAllowanceLevel)
			row.AdmissibleOK = true
		case NameCP:
			row.Criterion = opt(delta)
			row.Allowance = opt(cpAllowanceLevel)
		case NameTDI:
			row.Criterion = opt(pi)
			row.Allowance = opt(tdiAllowanceLevel)
		}
		rows = append(rows, row)
	}
	return &Report{Rows: rows}, nil
}

// FullReport runs all three estimation procedures of a and assembles
// their results into the report table.
func (a *Agreement) FullReport() (*Report, error) {
	approx, err := a.CCCApprox()
	if err != nil {
		return nil, err
	}
	ustat, err := a.CCCUStat()
	if err != nil {
		return nil, err
	}
	cptdi, err := a.CPTDIApprox()
	if err != nil {
		return nil, err
	}
	return NewReport(Merge(approx, ustat, cptdi), a.Delta, a.Pi)
}
