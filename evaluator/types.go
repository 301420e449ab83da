// SPDX-License-Identifier: MIT

package evaluator

import "regexp"

// NumberPattern matches one operand: optional minus, digits, optional point
// and fraction. The point may be trailing ("5.").
const NumberPattern = `(-?\d+\.?\d*)`

// Arity tags an operator as taking one or two operands.
type Arity int

const (
	// Unary operators are prefix function names: sin0.5, ln2.
	Unary Arity = 1

	// Binary operators are infix symbols: 2^3, 4/2.
	Binary Arity = 2
)

// Operator is one row of the rewrite table.
//
// Key is the substring whose presence triggers a pass; Name is the
// human-readable operation name (the Key of the exponential is "e", its
// Name "exp").
type Operator struct {
	Key     string
	Name    string
	Arity   Arity
	Pattern *regexp.Regexp

	unary  func(float64) float64
	binary func(a, b float64) float64
}

// Apply computes the operator on already-parsed operands. For Unary
// operators only the first operand is used.
func (op Operator) Apply(a, b float64) float64 {
	if op.Arity == Unary {
		return op.unary(a)
	}

	return op.binary(a, b)
}

// Bindings maps a variable token to the replacement text spliced in as
// "(" + value + ")".
type Bindings map[string]string

// CacheStats reports cache activity of one Evaluator.
type CacheStats struct {
	Hits    int
	Misses  int
	Entries int
}
