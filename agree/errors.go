// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

import "fmt"

// A SampleSizeError reports a sample too small for the degrees-of-
// freedom corrections of the procedure being invoked.
type SampleSizeError struct {
	Op  string // procedure that was invoked
	N   int    // sample size provided
	Min int    // minimum the procedure's formulas permit
}

func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("%s: sample size %d below minimum %d", e.Op, e.N, e.Min)
}

// A DegenerateInputError reports input on which an estimator's
// formulas are undefined, such as a perfectly constant series or
// perfectly identical paired series.
type DegenerateInputError struct {
	Op     string
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input: %s", e.Op, e.Reason)
}

// A DomainError reports a value outside the valid domain of a
// transform or of a downstream variance formula.
type DomainError struct {
	Op string
	X  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v outside valid domain", e.Op, e.X)
}

// A MissingResultError reports a report assembled before the
// estimation procedure that produces the named estimator was run.
// This is a programming error, not a data error.
type MissingResultError struct {
	Name string
}

func (e *MissingResultError) Error() string {
	return fmt.Sprintf("estimator %q has not been computed", e.Name)
}
