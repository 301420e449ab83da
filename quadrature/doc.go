// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals of a sampled function
// with the mid-ordinate, trapezium and Simpson rules.
//
// 🚀 Rules (delta = |b-a| / n, min = min(a, b)):
//
//	Mid-ordinate  delta · Σ f(min + (i+½)·delta),            i = 0..n-1
//	Trapezium     delta/2 · (y0 + yn + 2·Σ y1..yn-1)
//	Simpson       delta/3 · (y0 + yn + 4·Σ odd + 2·Σ even),  n even
//
// The integral is directed: when b < a the result is negated.
//
// ✨ Every run returns the ordered sample list next to the value, and each
// rule renders that list as the weighted-sum formula shown to users:
//
//	1/2 * 0.5 * ( + 0  + 4 + 2 * ( + 0.25 + 1 + 2.25))
//
// ⚙️ Usage:
//
//	f := function.New("x^2")
//	res, err := quadrature.Integrate(ctx, f, 0, 2, 4, quadrature.KindSimpson)
//	text := quadrature.Simpson{}.Formula(res)
//
// Preconditions (n >= 1, n even for Simpson, finite limits) are checked
// before the first sample and reported as ErrPrecondition. A NaN or ±Inf
// sample propagates into the value. The context is checked before every
// sample; a cancelled run returns ErrCancelled.
package quadrature
