// SPDX-License-Identifier: MIT

package evaluator

import (
	"errors"
	"fmt"
)

// ErrInvalidFunction is the single failure every reduction error is reported
// as: malformed numerals, unknown tokens, residue that is not a numeral.
var ErrInvalidFunction = errors.New("evaluator: Invalid function")

// errRunaway marks a rewrite that kept matching past maxPasses.
var errRunaway = errors.New("rewrite did not converge")

// EvaluationError carries the expression that failed to reduce.
// It unwraps to ErrInvalidFunction so callers match with errors.Is.
type EvaluationError struct {
	Expression string
	Cause      error
}

func (e *EvaluationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", ErrInvalidFunction, e.Expression, e.Cause)
	}

	return fmt.Sprintf("%v: %q", ErrInvalidFunction, e.Expression)
}

// Unwrap returns ErrInvalidFunction.
func (e *EvaluationError) Unwrap() error { return ErrInvalidFunction }

func invalid(expr string, cause error) error {
	return &EvaluationError{Expression: expr, Cause: cause}
}
