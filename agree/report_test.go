// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullReport(t *testing.T) {
	a := newAgreement(t, devicePairs.x, devicePairs.y)
	rep, err := a.FullReport()
	require.NoError(t, err)

	var names []string
	for _, row := range rep.Rows {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{
		NameAcc, NameRho, NameCCC, NameCCCUStat,
		NameMSD, NameRBS, NameCP, NameTDI,
	}, names, "rows are in fixed display order, without z_ustat")

	rows := make(map[string]Row)
	for _, row := range rep.Rows {
		rows[row.Name] = row
	}

	// Criterion only where one applies.
	assert.False(t, rows[NameAcc].Criterion.OK)
	assert.False(t, rows[NameMSD].Criterion.OK)
	require.True(t, rows[NameCP].Criterion.OK)
	assert.Equal(t, a.Delta, rows[NameCP].Criterion.V)
	require.True(t, rows[NameTDI].Criterion.OK)
	assert.Equal(t, a.Pi, rows[NameTDI].Criterion.V)

	// Allowance only where one applies.
	assert.False(t, rows[NameAcc].Allowance.OK)
	assert.False(t, rows[NameRho].Allowance.OK)
	assert.False(t, rows[NameMSD].Allowance.OK)
	assert.InDelta(t, 0.9775, rows[NameCCC].Allowance.V, 1e-12)
	assert.InDelta(t, 0.9775, rows[NameCCCUStat].Allowance.V, 1e-12)
	assert.Equal(t, 0.9, rows[NameCP].Allowance.V)
	assert.Equal(t, 10.0, rows[NameTDI].Allowance.V)

	// The rbs row carries the boolean admissibility classification
	// instead of a numeric threshold.
	require.True(t, rows[NameRBS].AdmissibleOK)
	assert.False(t, rows[NameRBS].Allowance.OK)
	assert.Equal(t, CPTDIAllowance(rows[NameRBS].Value, 0.9), rows[NameRBS].Admissible)
}

func TestNewReportMissingResult(t *testing.T) {
	a := newAgreement(t, devicePairs.x, devicePairs.y)
	approx, err := a.CCCApprox()
	require.NoError(t, err)

	// Reporting without the u-statistic and cp/tdi results is a
	// programming error.
	var merr *MissingResultError
	_, err = NewReport(approx, DefaultDelta, DefaultPi)
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, NameCCCUStat, merr.Name)
}

func TestEstimateDispatch(t *testing.T) {
	x, y := devicePairs.x, devicePairs.y

	res, err := Estimate(x, y, KindCCC, Options{})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Contains(t, res, NameCCC)
	assert.Contains(t, res, NameCCCUStat)

	for _, kind := range []Kind{KindCP, KindTDI, KindMSD} {
		res, err := Estimate(x, y, kind, Options{})
		require.NoError(t, err)
		assert.Len(t, res, 1, kind.String())
		assert.Contains(t, res, kind.String())
	}
}

func TestConvenienceWrappers(t *testing.T) {
	x, y := devicePairs.x, devicePairs.y

	res, err := CCC(x, y)
	require.NoError(t, err)
	assert.Contains(t, res, NameCCC)

	cp, err := CP(x, y, 1.5)
	require.NoError(t, err)
	assert.Equal(t, NameCP, cp.Name)

	tdi, err := TDI(x, y, 0.8)
	require.NoError(t, err)
	assert.Equal(t, NameTDI, tdi.Name)

	msd, err := MSD(x, y)
	require.NoError(t, err)
	assert.Equal(t, NameMSD, msd.Name)

	// Criteria are honored: a wider pi demands a wider deviation
	// index.
	tdi95, err := TDI(x, y, 0.95)
	require.NoError(t, err)
	assert.Greater(t, tdi95.Value, tdi.Value)
}
