// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/statagree/agreestat/agree"
	"github.com/statagree/agreestat/agreefmt"
)

// bloodPressure holds paired systolic blood pressure readings taken
// by two devices on the same subjects, in mmHg.
const bloodPressure = `# systolic blood pressure, device A vs device B (mmHg)
122.1 124.3
118.4 119.9
135.2 137.0
141.8 140.6
128.5 131.2
116.9 118.1
150.3 152.8
133.7 134.4
125.0 127.6
139.6 141.3
121.4 122.0
144.2 146.9
130.8 131.5
119.7 122.4
137.3 138.2
126.6 129.0
148.1 149.5
123.9 124.8
131.2 133.9
142.7 143.6
`

// assayOffset holds a calibration assay pair where the second method
// reads about one unit higher with some scatter around the step.
const assayOffset = `# assay calibration, reference vs candidate method
1.02 2.41
2.01 2.57
2.97 4.61
4.05 4.59
4.96 5.73
6.02 7.54
7.01 8.49
7.95 9.43
`

func runExamples(w io.Writer) error {
	demos := []struct {
		title string
		data  string
		delta float64
		pi    float64
	}{
		{"blood pressure, device A vs device B", bloodPressure, 10, 0.9},
		{"assay calibration, reference vs candidate", assayOffset, 0.5, 0.9},
	}
	for _, demo := range demos {
		x, y, err := agreefmt.ReadPairs(strings.NewReader(demo.data), demo.title)
		if err != nil {
			return err
		}
		a, err := agree.New(x, y)
		if err != nil {
			return err
		}
		a.Delta = demo.delta
		a.Pi = demo.pi
		rep, err := a.FullReport()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (n=%d, delta=%g, pi=%g)\n", demo.title, a.N(), a.Delta, a.Pi)
		if err := agreefmt.NewWriter(w).Write(rep); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
