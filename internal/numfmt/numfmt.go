// SPDX-License-Identifier: MIT

// Package numfmt holds the rounding and display rules shared by the formula
// and equation builders.
package numfmt

import (
	"math"
	"strconv"
)

// Round rounds v to places decimals, ties to even. Non-finite values are
// returned unchanged.
func Round(v float64, places int) float64 {
	if IsNonFinite(v) {
		return v
	}
	p := math.Pow(10, float64(places))

	return math.RoundToEven(v*p) / p
}

// Format renders v in its shortest round-trip decimal form, spelling
// non-finite values NaN, Infinity and -Infinity.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsNonFinite reports NaN or ±Inf.
func IsNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
