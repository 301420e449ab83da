// SPDX-License-Identifier: MIT

package derivative

import (
	"errors"
	"math"

	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/internal/numfmt"
)

// ErrUndefinedGradient is returned by Tangent when the first derivative is
// NaN or infinite at the point.
var ErrUndefinedGradient = errors.New("derivative: gradient undefined at point")

// Line describes the tangent and normal to f at Point.
//
// Gradient is the raw estimate; NormalGradient and the two equations are
// rounded to 3 decimals for display.
type Line struct {
	Point          float64
	Value          float64
	Gradient       float64
	NormalGradient float64
	Tangent        string
	Normal         string
}

// Tangent differentiates f at x and renders
//
//	y - f(x) = m (x - a)
//
// for the tangent and the normal.
func Tangent(f function.Evaluable, x float64) (Line, error) {
	fa, err := f.At(x)
	if err != nil {
		return Line{}, err
	}
	grad, err := First(f, x)
	if err != nil {
		return Line{}, err
	}
	if math.IsNaN(grad) || math.IsInf(grad, 0) {
		return Line{}, ErrUndefinedGradient
	}

	normal := numfmt.Round(-1/grad, 3)
	lhs := "y - " + numfmt.Format(numfmt.Round(fa, 3)) + " = "
	rhs := " (x - " + numfmt.Format(numfmt.Round(x, 3)) + ")"

	return Line{
		Point:          x,
		Value:          fa,
		Gradient:       grad,
		NormalGradient: normal,
		Tangent:        lhs + numfmt.Format(numfmt.Round(grad, 3)) + rhs,
		Normal:         lhs + numfmt.Format(normal) + rhs,
	}, nil
}
