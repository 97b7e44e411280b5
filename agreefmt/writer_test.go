// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreefmt

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statagree/agreestat/agree"
)

func testReport(t *testing.T) *agree.Report {
	t.Helper()
	x := []float64{12.1, 11.4, 13.2, 14.8, 12.5, 11.9, 15.3, 13.7, 12.0, 13.6}
	y := []float64{12.4, 11.9, 13.0, 14.6, 13.1, 11.8, 15.8, 13.4, 12.6, 13.3}
	a, err := agree.New(x, y)
	require.NoError(t, err)
	rep, err := a.FullReport()
	require.NoError(t, err)
	return rep
}

func TestWriterText(t *testing.T) {
	rep := testReport(t)
	var sb strings.Builder
	require.NoError(t, NewWriter(&sb).Write(rep))
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+len(rep.Rows))
	assert.Contains(t, lines[0], "estimator")
	assert.Contains(t, lines[0], "allowance")
	for i, row := range rep.Rows {
		assert.True(t, strings.HasPrefix(lines[1+i], row.Name),
			"line %d should start with %q: %q", 1+i, row.Name, lines[1+i])
	}
	// The rbs allowance renders as a boolean.
	assert.Regexp(t, `(?m)^rbs\b.*\b(true|false)\s*$`, out)
}

func TestWriteCSV(t *testing.T) {
	rep := testReport(t)
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, rep))

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(rep.Rows))
	assert.Equal(t, []string{"estimator", "value", "variance", "limit", "criterion", "allowance"}, records[0])
	for i, row := range rep.Rows {
		assert.Equal(t, row.Name, records[1+i][0])
		// Inapplicable cells are empty, not NaN.
		if !row.Variance.OK {
			assert.Empty(t, records[1+i][2])
		}
	}
}
