// SPDX-License-Identifier: MIT

package tools

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/katalvlaran/mathengine/internal/numfmt"
)

// Number is a float64 that encodes NaN and ±Inf as the strings "NaN",
// "Infinity" and "-Infinity".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(numfmt.Format(v))
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// EvaluateResult represents the JSON structure for evaluate results
type EvaluateResult struct {
	Expression string `json:"expression"`
	Value      Number `json:"value"`
}

// IntegrateResult represents the JSON structure for integrate results
type IntegrateResult struct {
	Equation string `json:"equation"`
	Rule     string `json:"rule"`
	Lower    Number `json:"lower"`
	Upper    Number `json:"upper"`
	Steps    int    `json:"steps"`
	Value    Number `json:"value"`
	Formula  string `json:"formula"`
}

// DifferentiateResult represents the JSON structure for differentiate results
type DifferentiateResult struct {
	Equation string `json:"equation"`
	Point    Number `json:"x"`
	First    Number `json:"first"`
	Second   Number `json:"second"`
}

// TangentResult represents the JSON structure for tangent results
type TangentResult struct {
	Equation       string `json:"equation"`
	Point          Number `json:"x"`
	Value          Number `json:"y"`
	Gradient       Number `json:"gradient"`
	NormalGradient Number `json:"normal_gradient"`
	Tangent        string `json:"tangent"`
	Normal         string `json:"normal"`
}

// ExtremaResult represents the JSON structure for find_extrema results
type ExtremaResult struct {
	Equation string          `json:"equation"`
	Low      Number          `json:"low"`
	High     Number          `json:"high"`
	Count    int             `json:"count"`
	Extrema  []ExtremumEntry `json:"extrema"`
}

// ExtremumEntry represents a single extremum in the results
type ExtremumEntry struct {
	Kind     string `json:"kind"`
	Location Number `json:"x"`
	Value    Number `json:"y"`
}
