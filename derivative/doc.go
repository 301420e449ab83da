// SPDX-License-Identifier: MIT

// Package derivative estimates first and second derivatives with five-point
// central-difference stencils.
//
// 🚀 Stencils (h = 0.001):
//
//	f'(x)  ≈ (-f(x+2h) + 8f(x+h) - 8f(x-h) + f(x-2h)) / 12 / h
//	f''(x) ≈ (-f(x+2h) + 16f(x+h) - 30f(x) + 16f(x-h) - f(x-2h)) / (12h²)
//
// Each estimate samples the target through its own cache, so moving the
// target point by h reuses most evaluations.
//
// ✨ Also provided:
//   - Tangent: gradient, normal gradient and rendered line equations at a
//     point, rounded to 3 decimals for display.
//
// ⚙️ Usage:
//
//	f := function.New("x^2")
//	d1, _ := derivative.First(f, 3)  // ≈ 6
//	d2, _ := derivative.Second(f, 3) // ≈ 2
//
// Evaluation errors are returned unchanged. A NaN estimate is a domain gap
// at or near the point; the caller decides whether to report it.
package derivative
