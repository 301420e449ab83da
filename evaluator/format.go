// SPDX-License-Identifier: MIT

package evaluator

import (
	"math"
	"regexp"
	"strconv"
)

// Decimals is the fixed precision of every numeral spliced back into the
// expression text while it is being reduced.
const Decimals = 8

// Sentinel spellings of non-finite results inside expression text.
const (
	nanText    = "NaN"
	posInfText = "Infinity"
	negInfText = "-Infinity"
)

var (
	piText    = strconv.FormatFloat(math.Pi, 'f', -1, 64)
	eulerText = strconv.FormatFloat(math.E, 'f', -1, 64)

	// numeralRegex accepts the fully reduced form of an expression.
	numeralRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
)

// FormatNumeral renders v the way intermediate results are written into
// the expression: fixed 8 decimals, or a NaN/Infinity sentinel.
func FormatNumeral(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return posInfText
	case math.IsInf(v, -1):
		return negInfText
	}

	return strconv.FormatFloat(v, 'f', Decimals, 64)
}

func parseOperand(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
