// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agreefmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/statagree/agreestat/agree"
)

var header = []string{"estimator", "value", "variance", "limit", "criterion", "allowance"}

// A Writer renders agreement report tables as aligned text.
type Writer struct {
	tw *tabwriter.Writer
}

// NewWriter returns a writer that renders report tables to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
}

// Write renders rep as one aligned table.
func (w *Writer) Write(rep *agree.Report) error {
	for i, col := range header {
		if i > 0 {
			fmt.Fprint(w.tw, "\t")
		}
		fmt.Fprint(w.tw, col)
	}
	fmt.Fprintln(w.tw)
	for _, row := range rep.Rows {
		fields := rowFields(row)
		for i, f := range fields {
			if i > 0 {
				fmt.Fprint(w.tw, "\t")
			}
			fmt.Fprint(w.tw, f)
		}
		fmt.Fprintln(w.tw)
	}
	return w.tw.Flush()
}

// WriteCSV renders rep in CSV form with the same schema as the text
// table, for consumption by other programs. Inapplicable cells are
// empty.
func WriteCSV(w io.Writer, rep *agree.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		if err := cw.Write(rowFields(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func rowFields(row agree.Row) []string {
	fields := []string{
		row.Name,
		formatFloat(row.Value),
		formatOpt(row.Variance),
		formatOpt(row.Limit),
		formatOpt(row.Criterion),
		formatOpt(row.Allowance),
	}
	if row.AdmissibleOK {
		fields[5] = strconv.FormatBool(row.Admissible)
	}
	return fields
}

func formatOpt(v agree.OptFloat) string {
	if !v.OK {
		return ""
	}
	return formatFloat(v.V)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
