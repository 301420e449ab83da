// SPDX-License-Identifier: MIT

package evaluator

// DefaultMaxPasses bounds the recursive re-matching of a single operator.
// Real expressions settle in a handful of passes.
const DefaultMaxPasses = 4096

const panicMaxPassesInvalid = "evaluator: WithMaxPasses: n must be > 0"

// Option configures an Evaluator at construction time.
type Option func(*options)

type options struct {
	boundaryAware bool
	maxPasses     int
}

func defaultOptions() options {
	return options{
		boundaryAware: false,
		maxPasses:     DefaultMaxPasses,
	}
}

// WithBoundaryAwareSubstitution makes EvaluateWith replace a binding key
// only where it is not preceded or followed by a letter. The default is the
// literal substring policy.
func WithBoundaryAwareSubstitution() Option {
	return func(o *options) { o.boundaryAware = true }
}

// WithMaxPasses overrides DefaultMaxPasses. Panics when n <= 0.
func WithMaxPasses(n int) Option {
	if n <= 0 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *options) { o.maxPasses = n }
}
