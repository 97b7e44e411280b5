// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agree

// CPTDIAllowance reports whether the CP/TDI normal approximation is
// admissible for the given relative bias squared at the given
// coverage probability allowance level, per Lin's lookup table. A
// level outside the table is never admissible; there is no fallback
// or interpolation.
func CPTDIAllowance(rbs, cpAllowance float64) bool {
	switch cpAllowance {
	case 0.75:
		return rbs <= 0.5
	case 0.8:
		return rbs <= 8
	case 0.85:
		return rbs <= 2
	case 0.9:
		return rbs <= 1
	case 0.95:
		return rbs <= 0.5
	}
	return false
}
