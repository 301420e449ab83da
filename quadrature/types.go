// SPDX-License-Identifier: MIT

package quadrature

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mathengine/function"
)

var (
	// ErrPrecondition is the parent of every input-validation failure.
	ErrPrecondition = errors.New("quadrature: precondition violated")

	// ErrNonPositiveSteps indicates n < 1.
	ErrNonPositiveSteps = fmt.Errorf("%w: step count must be >= 1", ErrPrecondition)

	// ErrOddSteps indicates an odd n passed to the Simpson rule.
	ErrOddSteps = fmt.Errorf("%w: simpson rule requires an even step count", ErrPrecondition)

	// ErrNonFiniteLimit indicates a NaN or infinite integration limit.
	ErrNonFiniteLimit = fmt.Errorf("%w: limits must be finite", ErrPrecondition)

	// ErrCancelled wraps ctx.Err() when a run is stopped early.
	ErrCancelled = errors.New("quadrature: cancelled")

	// ErrUnknownKind is returned for a Kind or name with no rule.
	ErrUnknownKind = errors.New("quadrature: unknown rule")
)

// Ordinate is one sample (x, f(x)).
type Ordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is a finished integration.
type Result struct {
	// Value is the directed integral estimate.
	Value float64 `json:"value"`

	// Delta is the strip width |b-a| / n.
	Delta float64 `json:"delta"`

	// Ordinates are the samples in ascending x.
	Ordinates []Ordinate `json:"ordinates"`
}

// Rule is one quadrature method.
type Rule interface {
	// Integrate samples f over [min(a,b), max(a,b)] with n strips.
	Integrate(ctx context.Context, f function.Evaluable, a, b float64, n int) (*Result, error)

	// Formula renders res as this rule's weighted-sum expression.
	Formula(res *Result) string
}

// Kind names a rule for dispatch.
type Kind int

const (
	// KindMidOrdinate selects MidOrdinate.
	KindMidOrdinate Kind = iota

	// KindTrapezium selects Trapezium.
	KindTrapezium

	// KindSimpson selects Simpson.
	KindSimpson
)

var kindNames = map[Kind]string{
	KindMidOrdinate: "midordinate",
	KindTrapezium:   "trapezium",
	KindSimpson:     "simpson",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a rule name to its Kind. Matching ignores case; "mid"
// and "trapezoid" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "midordinate", "mid-ordinate", "mid":
		return KindMidOrdinate, nil
	case "trapezium", "trapezoid":
		return KindTrapezium, nil
	case "simpson":
		return KindSimpson, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// RuleFor returns the Rule of k.
func RuleFor(k Kind) (Rule, error) {
	switch k {
	case KindMidOrdinate:
		return MidOrdinate{}, nil
	case KindTrapezium:
		return Trapezium{}, nil
	case KindSimpson:
		return Simpson{}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}
