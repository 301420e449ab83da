// SPDX-License-Identifier: MIT

package evaluator_test

import (
	"math"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathengine/evaluator"
)

const tol = 1e-6

// TestEvaluate_Basic covers single operators, constants and functions.
func TestEvaluate_Basic(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"add", "2+3", 5},
		{"power", "2^3", 8},
		{"sine of zero", "sin(0)", 0},
		{"square root", "sqrt(16)", 4},
		{"mul before add", "2+3*4", 14},
		{"div before sub", "9-6/3", 7},
		{"left to right sub", "10-2-3", 5},
		{"negative result", "2-3", -1},
		{"parentheses first", "(1+2)*3", 9},
		{"nested parentheses", "((1+1)*(2+2))^2", 64},
		{"negative operand", "2*(0-3)", -6},
		{"abs of negative", "abs(-3)", 3},
		{"ln of euler", "ln(euler)", 1},
		{"exp", "e(0)", 1},
		{"pi", "pi", math.Pi},
		{"cos of pi", "cos(pi)", -1},
		{"atan", "atan(1)", math.Pi / 4},
		{"whitespace and case", "  SQRT( 16 ) ", 4},
		{"trailing point", "5.*2", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.New().Evaluate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

// TestEvaluate_Undefined verifies that domain gaps are values, not errors.
func TestEvaluate_Undefined(t *testing.T) {
	ev := evaluator.New()

	v, err := ev.Evaluate("1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "1/0 must be +Inf")

	v, err = ev.Evaluate("-1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1), "-1/0 must be -Inf")

	v, err = ev.Evaluate("sqrt(-1)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "sqrt(-1) must be NaN")

	v, err = ev.Evaluate("ln(0-1)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "ln of a negative must be NaN")

	v, err = ev.Evaluate("(1/0)+1")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "sentinel inside a larger expression short-circuits")

	assert.Equal(t, 0, ev.Stats().Entries, "non-finite results are not cached")
}

// TestEvaluate_Invalid verifies every malformed input maps to ErrInvalidFunction.
func TestEvaluate_Invalid(t *testing.T) {
	for _, in := range []string{"2+", "foo", "()", "2**3", "-(-5)", ""} {
		t.Run(in, func(t *testing.T) {
			ev := evaluator.New()
			_, err := ev.Evaluate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)

			var evErr *evaluator.EvaluationError
			require.ErrorAs(t, err, &evErr)
			assert.Equal(t, in, evErr.Expression)
			assert.Equal(t, 0, ev.Stats().Entries, "failed evaluations are never cached")
		})
	}
}

// TestEvaluate_OrderIsPrecedence pins the table-order behaviour: binary
// operators run before function names.
func TestEvaluate_OrderIsPrecedence(t *testing.T) {
	ev := evaluator.New()

	got, err := ev.Evaluate("sin(0)+1")
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(1), got, tol, "the sum is taken before the sine")

	got, err = ev.Evaluate("(sin(0))+1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, tol, "parentheses force the sine first")

	got, err = ev.Evaluate("-3^2")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, tol, "a leading minus belongs to the base")
}

// TestEvaluate_Cache checks hits, misses and key normalisation.
func TestEvaluate_Cache(t *testing.T) {
	ev := evaluator.New()

	first, err := ev.Evaluate("2 + 3")
	require.NoError(t, err)
	second, err := ev.Evaluate("2+3")
	require.NoError(t, err)
	third, err := ev.Evaluate("SQRT(16)")
	require.NoError(t, err)
	fourth, err := ev.Evaluate("sqrt( 16 )")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, third, fourth)
	assert.Equal(t, evaluator.CacheStats{Hits: 2, Misses: 2, Entries: 2}, ev.Stats())

	other := evaluator.New()
	_, err = other.Evaluate("2+3")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Stats().Hits, "caches are per instance")
}

// TestEvaluateWith_Substitution covers the literal and boundary-aware policies.
func TestEvaluateWith_Substitution(t *testing.T) {
	got, err := evaluator.New().EvaluateWith("x*2", evaluator.Bindings{"x": "4"})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got, tol)

	got, err = evaluator.New().EvaluateWith("X^2", evaluator.Bindings{"x": "-3"})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, tol)

	got, err = evaluator.New().EvaluateWith("x+y", evaluator.Bindings{"x": "1", "y": "2"})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, tol)

	// "t" also occurs inside "sqrt": the literal policy corrupts the token.
	_, err = evaluator.New().EvaluateWith("sqrt(t)", evaluator.Bindings{"t": "2"})
	assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)

	got, err = evaluator.New(evaluator.WithBoundaryAwareSubstitution()).
		EvaluateWith("sqrt(t)", evaluator.Bindings{"t": "2"})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, tol)

	_, err = evaluator.New().EvaluateWith("x", evaluator.Bindings{"": "1"})
	assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)
}

// TestEvaluate_MaxPasses verifies the rewrite guard and its option validation.
func TestEvaluate_MaxPasses(t *testing.T) {
	_, err := evaluator.New(evaluator.WithMaxPasses(1)).Evaluate("1+2+3")
	assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)

	got, err := evaluator.New(evaluator.WithMaxPasses(2)).Evaluate("1+2+3")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, tol)

	assert.Panics(t, func() { evaluator.WithMaxPasses(0) })
}

// TestOperators_Order pins the table order.
func TestOperators_Order(t *testing.T) {
	var names []string
	for _, op := range evaluator.New().Operators() {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{
		"pow", "div", "mul", "add", "sub",
		"asin", "acos", "atan", "sin", "cos", "tan", "abs", "sqrt", "ln", "exp",
	}, names)
}

// TestFormatNumeral checks the spliced text form.
func TestFormatNumeral(t *testing.T) {
	assert.Equal(t, "0.50000000", evaluator.FormatNumeral(0.5))
	assert.Equal(t, "-2.12345679", evaluator.FormatNumeral(-2.123456789))
	assert.Equal(t, "NaN", evaluator.FormatNumeral(math.NaN()))
	assert.Equal(t, "Infinity", evaluator.FormatNumeral(math.Inf(1)))
	assert.Equal(t, "-Infinity", evaluator.FormatNumeral(math.Inf(-1)))
}

// TestEvaluate_AgreesWithExprLang compares single-operator expressions with
// an independent evaluator.
func TestEvaluate_AgreesWithExprLang(t *testing.T) {
	for _, in := range []string{"2+3", "7-10", "6*7", "7/2", "2^10", "1.5*4", "12/5"} {
		t.Run(in, func(t *testing.T) {
			want, err := expr.Eval(in, nil)
			require.NoError(t, err)

			got, err := evaluator.New().Evaluate(in)
			require.NoError(t, err)
			assert.InDelta(t, toFloat(t, want), got, tol)
		})
	}
}

func toFloat(t *testing.T, v any) float64 {
	t.Helper()
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	default:
		t.Fatalf("unexpected oracle result %T", v)
		return 0
	}
}
