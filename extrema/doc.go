// SPDX-License-Identifier: MIT

// Package extrema locates local maxima and minima of a sampled function by
// a fixed-step derivative scan.
//
// 🚀 Algorithm:
//
//  1. Walk x from low to high in steps of 0.001.
//  2. Estimate f'(x) with the five-point central difference.
//  3. When |round(f'(x), 3)| < 0.0025, estimate f''(x):
//     negative → Maximum, otherwise → Minimum.
//  4. Record (x, f(x)) unless a recorded location already rounds to the
//     same value at 2 decimals.
//
// The scan is deliberately simple: flat regions or tangential roots may
// yield duplicates or misses near the tolerance boundary. NaN derivatives
// are skipped as "no information".
//
// ⚙️ Usage:
//
//	found, err := extrema.FindExtrema(ctx, function.New("x^2-3"), -5, 5,
//	    extrema.WithProgress(func(x, lo, hi float64) { bar.Set((x - lo) / (hi - lo)) }),
//	)
//
// Any evaluation error aborts the scan and discards partial results. A
// cancelled context returns ErrCancelled.
package extrema
