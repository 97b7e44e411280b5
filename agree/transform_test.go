// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRoundTrip(t *testing.T) {
	tests := []struct {
		tr Transform
		xs []float64
	}{
		{TransformZ, []float64{-0.999, -0.5, 0, 0.3, 0.95, 0.999}},
		{TransformLogit, []float64{0.001, 0.25, 0.5, 0.75, 0.999}},
		{TransformLog, []float64{0.001, 0.5, 1, 2, 1e6}},
	}
	for _, tt := range tests {
		for _, x := range tt.xs {
			y, err := tt.tr.Apply(x)
			require.NoError(t, err, "%v.Apply(%v)", tt.tr, x)
			assert.InDelta(t, x, tt.tr.Inverse(y), 1e-9, "%v round trip at %v", tt.tr, x)
		}
	}
}

func TestTransformDeriv(t *testing.T) {
	// Compare the closed-form derivative against a central
	// difference of Apply.
	const h = 1e-6
	tests := []struct {
		tr Transform
		xs []float64
	}{
		{TransformZ, []float64{-0.9, -0.2, 0, 0.4, 0.9}},
		{TransformLogit, []float64{0.1, 0.4, 0.5, 0.9}},
		{TransformLog, []float64{0.5, 1, 3, 100}},
	}
	for _, tt := range tests {
		for _, x := range tt.xs {
			d, err := tt.tr.Deriv(x)
			require.NoError(t, err)
			hi, err := tt.tr.Apply(x + h)
			require.NoError(t, err)
			lo, err := tt.tr.Apply(x - h)
			require.NoError(t, err)
			assert.InEpsilon(t, (hi-lo)/(2*h), d, 1e-4, "%v.Deriv(%v)", tt.tr, x)
		}
	}
}

func TestTransformDomain(t *testing.T) {
	tests := []struct {
		tr Transform
		xs []float64
	}{
		{TransformZ, []float64{-1, 1, -1.5, 2}},
		{TransformLogit, []float64{0, 1, -0.5, 1.5}},
		{TransformLog, []float64{0, -1}},
	}
	for _, tt := range tests {
		for _, x := range tt.xs {
			_, err := tt.tr.Apply(x)
			var derr *DomainError
			require.ErrorAs(t, err, &derr, "%v.Apply(%v)", tt.tr, x)
			assert.Equal(t, x, derr.X)

			_, err = tt.tr.Deriv(x)
			require.ErrorAs(t, err, &derr, "%v.Deriv(%v)", tt.tr, x)
		}
	}
}

func TestTransformInverseTotal(t *testing.T) {
	// Inverse must land inside the transform's domain for any
	// real input, including extremes.
	for _, tr := range []Transform{TransformZ, TransformLogit, TransformLog} {
		for _, y := range []float64{-50, -1, 0, 1, 50} {
			x := tr.Inverse(y)
			_, err := tr.Apply(x)
			if err != nil {
				// Saturation at the domain edge is the
				// only acceptable failure.
				assert.True(t, atDomainEdge(x, tr) || x == 0,
					"%v.Inverse(%v) = %v escapes the domain", tr, y, x)
			}
		}
	}
}
