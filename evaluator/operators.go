// SPDX-License-Identifier: MIT

package evaluator

import (
	"math"
	"regexp"
)

// parenthesisRegex matches a parenthesised run with no nested parentheses.
// Group 1 is a preceding function name, group 3 a trailing "^"; neither is
// consumed by the reduction, only group 2 is.
var parenthesisRegex = regexp.MustCompile(`([a-z]*)\(([^\(\)]+)\)(\^|!?)`)

// defaultOperators is the rewrite table in application order. The order is
// the only precedence the evaluator has.
var defaultOperators = []Operator{
	binaryOp("^", "pow", `\^`, math.Pow),
	binaryOp("/", "div", `/`, func(a, b float64) float64 { return a / b }),
	binaryOp("*", "mul", `\*`, func(a, b float64) float64 { return a * b }),
	binaryOp("+", "add", `\+`, func(a, b float64) float64 { return a + b }),
	binaryOp("-", "sub", `-`, func(a, b float64) float64 { return a - b }),

	unaryOp("asin", "asin", math.Asin),
	unaryOp("acos", "acos", math.Acos),
	unaryOp("atan", "atan", math.Atan),

	unaryOp("sin", "sin", math.Sin),
	unaryOp("cos", "cos", math.Cos),
	unaryOp("tan", "tan", math.Tan),

	unaryOp("abs", "abs", math.Abs),
	unaryOp("sqrt", "sqrt", math.Sqrt),
	unaryOp("ln", "ln", math.Log),
	unaryOp("e", "exp", math.Exp),
}

func binaryOp(key, name, symbol string, fn func(a, b float64) float64) Operator {
	return Operator{
		Key:     key,
		Name:    name,
		Arity:   Binary,
		Pattern: regexp.MustCompile(NumberPattern + symbol + NumberPattern),
		binary:  fn,
	}
}

func unaryOp(key, name string, fn func(float64) float64) Operator {
	return Operator{
		Key:     key,
		Name:    name,
		Arity:   Unary,
		Pattern: regexp.MustCompile(regexp.QuoteMeta(key) + NumberPattern),
		unary:   fn,
	}
}
