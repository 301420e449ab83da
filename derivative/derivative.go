// SPDX-License-Identifier: MIT

package derivative

import (
	"github.com/katalvlaran/mathengine/function"
)

// H is the fixed stencil step.
const H = 0.001

// CentralDifferenceMethod differentiates TargetFunction at TargetPoint.
// Both fields may be changed between calls to reuse the value.
type CentralDifferenceMethod struct {
	TargetFunction function.Evaluable
	TargetPoint    float64
}

// New returns a method for f at x.
func New(f function.Evaluable, x float64) *CentralDifferenceMethod {
	return &CentralDifferenceMethod{TargetFunction: f, TargetPoint: x}
}

// DeriveFirst returns the five-point estimate of f'(TargetPoint).
func (m *CentralDifferenceMethod) DeriveFirst() (float64, error) {
	s, err := m.sample(false)
	if err != nil {
		return 0, err
	}

	return (-s.p2 + 8*s.p1 - 8*s.m1 + s.m2) / 12 / H, nil
}

// DeriveSecond returns the five-point estimate of f''(TargetPoint).
func (m *CentralDifferenceMethod) DeriveSecond() (float64, error) {
	s, err := m.sample(true)
	if err != nil {
		return 0, err
	}

	return (-s.p2 + 16*s.p1 - 30*s.c + 16*s.m1 - s.m2) / (12 * H * H), nil
}

// stencil holds f at x-2h, x-h, x, x+h, x+2h.
type stencil struct {
	m2, m1, c, p1, p2 float64
}

// sample evaluates the stencil in the order f(x+2h), f(x+h), [f(x)],
// f(x-h), f(x-2h).
func (m *CentralDifferenceMethod) sample(withCentre bool) (stencil, error) {
	var (
		s   stencil
		err error
	)
	f, x := m.TargetFunction, m.TargetPoint

	if s.p2, err = f.At(x + 2*H); err != nil {
		return s, err
	}
	if s.p1, err = f.At(x + H); err != nil {
		return s, err
	}
	if withCentre {
		if s.c, err = f.At(x); err != nil {
			return s, err
		}
	}
	if s.m1, err = f.At(x - H); err != nil {
		return s, err
	}
	if s.m2, err = f.At(x - 2*H); err != nil {
		return s, err
	}

	return s, nil
}

// First is shorthand for New(f, x).DeriveFirst().
func First(f function.Evaluable, x float64) (float64, error) {
	return New(f, x).DeriveFirst()
}

// Second is shorthand for New(f, x).DeriveSecond().
func Second(f function.Evaluable, x float64) (float64, error) {
	return New(f, x).DeriveSecond()
}
