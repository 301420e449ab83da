// SPDX-License-Identifier: MIT

package function

import (
	"github.com/katalvlaran/mathengine/evaluator"
)

// DefaultVariable is the free-variable token used when none is given.
const DefaultVariable = "x"

// Evaluable is anything that can be sampled at a point.
type Evaluable interface {
	At(x float64) (float64, error)
}

// Func adapts a native Go function to Evaluable. It never fails.
type Func func(float64) float64

// At calls fn(x).
func (fn Func) At(x float64) (float64, error) { return fn(x), nil }

// Option configures a Function.
type Option func(*Function)

// WithVariable sets the free-variable token. Panics on an empty name.
func WithVariable(name string) Option {
	if name == "" {
		panic("function: WithVariable: name must be non-empty")
	}

	return func(f *Function) { f.variable = name }
}

// WithEvaluatorOptions forwards options to the owned Evaluator.
func WithEvaluatorOptions(opts ...evaluator.Option) Option {
	return func(f *Function) { f.evalOpts = append(f.evalOpts, opts...) }
}

// Function is an equation in one variable with its own Evaluator.
type Function struct {
	equation string
	variable string
	evalOpts []evaluator.Option
	eval     *evaluator.Evaluator
}

// New returns a Function of equation in DefaultVariable unless
// WithVariable says otherwise.
func New(equation string, opts ...Option) *Function {
	f := &Function{equation: equation, variable: DefaultVariable}
	for _, opt := range opts {
		opt(f)
	}
	f.eval = evaluator.New(f.evalOpts...)

	return f
}

// Equation returns the expression text as given.
func (f *Function) Equation() string { return f.equation }

// Variable returns the free-variable token.
func (f *Function) Variable() string { return f.variable }

// At evaluates the equation with the variable bound to x. x is written into
// the expression with the same fixed 8 decimals used for intermediate
// results.
func (f *Function) At(x float64) (float64, error) {
	return f.eval.EvaluateWith(f.equation, evaluator.Bindings{
		f.variable: evaluator.FormatNumeral(x),
	})
}

// Stats exposes the cache counters of the owned Evaluator.
func (f *Function) Stats() evaluator.CacheStats { return f.eval.Stats() }
