// SPDX-License-Identifier: MIT

package quadrature

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/internal/numfmt"
)

// Integrate runs the rule selected by kind.
func Integrate(ctx context.Context, f function.Evaluable, a, b float64, n int, kind Kind) (*Result, error) {
	r, err := RuleFor(kind)
	if err != nil {
		return nil, err
	}

	return r.Integrate(ctx, f, a, b, n)
}

// FormulaString renders res with the formula template of kind.
func FormulaString(kind Kind, res *Result) (string, error) {
	r, err := RuleFor(kind)
	if err != nil {
		return "", err
	}

	return r.Formula(res), nil
}

// MidOrdinate samples the centre of every strip.
type MidOrdinate struct{}

// Integrate implements Rule.
func (MidOrdinate) Integrate(ctx context.Context, f function.Evaluable, a, b float64, n int) (*Result, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
	}
	lo, delta := span(a, b, n)

	ords, err := sample(ctx, f, n-1, func(i int) float64 { return lo + (float64(i)+0.5)*delta })
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, o := range ords {
		sum += o.Y
	}

	return finish(a, b, delta*sum, delta, ords), nil
}

// Formula renders "delta * ( y0 y1 ...)".
func (MidOrdinate) Formula(res *Result) string {
	if res == nil || len(res.Ordinates) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(deltaText(res) + " * (")
	for _, o := range res.Ordinates {
		sb.WriteString(ordinateText(o))
	}
	sb.WriteString(")")

	return sb.String()
}

// Trapezium joins neighbouring samples with straight lines.
type Trapezium struct{}

// Integrate implements Rule.
func (Trapezium) Integrate(ctx context.Context, f function.Evaluable, a, b float64, n int) (*Result, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
	}
	lo, delta := span(a, b, n)

	ords, err := sample(ctx, f, n, func(i int) float64 { return lo + float64(i)*delta })
	if err != nil {
		return nil, err
	}

	inner := 0.0
	for _, o := range ords[1:n] {
		inner += o.Y
	}
	value := delta / 2 * (ords[0].Y + ords[n].Y + 2*inner)

	return finish(a, b, value, delta, ords), nil
}

// Formula renders "1/2 * delta * ( y0  yn + 2 * ( y1 ...))".
func (Trapezium) Formula(res *Result) string {
	if res == nil || len(res.Ordinates) == 0 {
		return ""
	}
	ords := res.Ordinates
	last := len(ords) - 1

	var sb strings.Builder
	sb.WriteString("1/2 * " + deltaText(res) + " * (")
	sb.WriteString(ordinateText(ords[0]) + " " + ordinateText(ords[last]))
	sb.WriteString(" + 2 * (")
	for i := 1; i < last; i++ {
		sb.WriteString(ordinateText(ords[i]))
	}
	sb.WriteString("))")

	return sb.String()
}

// Simpson fits parabolas through consecutive sample triples. n must be even.
type Simpson struct{}

// Integrate implements Rule.
func (Simpson) Integrate(ctx context.Context, f function.Evaluable, a, b float64, n int) (*Result, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, ErrOddSteps
	}
	lo, delta := span(a, b, n)

	ords, err := sample(ctx, f, n, func(i int) float64 { return lo + float64(i)*delta })
	if err != nil {
		return nil, err
	}

	odd, even := 0.0, 0.0
	for j := 1; j < n; j++ {
		if j%2 == 0 {
			even += ords[j].Y
		} else {
			odd += ords[j].Y
		}
	}
	value := delta / 3 * (ords[0].Y + ords[n].Y + 4*odd + 2*even)

	return finish(a, b, value, delta, ords), nil
}

// Formula renders "(1/3) * delta * ( y0 yn + 4 * ( odd...) + 2 * ( even...))".
func (Simpson) Formula(res *Result) string {
	if res == nil || len(res.Ordinates) == 0 {
		return ""
	}
	ords := res.Ordinates
	last := len(ords) - 1

	var sb strings.Builder
	sb.WriteString("(1/3) * " + deltaText(res) + " * (")
	sb.WriteString(ordinateText(ords[0]) + ordinateText(ords[last]))
	sb.WriteString(" + 4 * (")
	for i := 1; i < last; i += 2 {
		sb.WriteString(ordinateText(ords[i]))
	}
	sb.WriteString(") + 2 * (")
	for i := 2; i < last; i += 2 {
		sb.WriteString(ordinateText(ords[i]))
	}
	sb.WriteString("))")

	return sb.String()
}

func validate(a, b float64, n int) error {
	if n < 1 {
		return ErrNonPositiveSteps
	}
	if numfmt.IsNonFinite(a) || numfmt.IsNonFinite(b) {
		return ErrNonFiniteLimit
	}

	return nil
}

func span(a, b float64, n int) (lo, delta float64) {
	return math.Min(a, b), math.Abs(b-a) / float64(n)
}

// maxPrealloc caps the Ordinate capacity reserved up front; longer runs
// grow by append.
const maxPrealloc = 1 << 12

// sample evaluates f at x(0..last), checking ctx before each point.
func sample(ctx context.Context, f function.Evaluable, last int, x func(int) float64) ([]Ordinate, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	capacity := maxPrealloc
	if last < maxPrealloc {
		capacity = last + 1
	}
	ords := make([]Ordinate, 0, capacity)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		xi := x(i)
		y, err := f.At(xi)
		if err != nil {
			return nil, err
		}
		ords = append(ords, Ordinate{X: xi, Y: y})
		if i == last {
			break
		}
	}

	return ords, nil
}

func finish(a, b, value, delta float64, ords []Ordinate) *Result {
	if b < a {
		value = -value
	}

	return &Result{Value: value, Delta: delta, Ordinates: ords}
}

func deltaText(res *Result) string { return numfmt.Format(numfmt.Round(res.Delta, 4)) }

// ordinateText renders one term: " + y", or " y" when y is negative.
func ordinateText(o Ordinate) string {
	y := numfmt.Format(numfmt.Round(o.Y, 4))
	if o.Y < 0 {
		return " " + y
	}

	return " + " + y
}
