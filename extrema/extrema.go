// SPDX-License-Identifier: MIT

package extrema

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mathengine/derivative"
	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/internal/numfmt"
)

// FindExtrema scans [low, high] and returns the extrema in scan order.
func FindExtrema(ctx context.Context, f function.Evaluable, low, high float64, opts ...Option) ([]Extremum, error) {
	if numfmt.IsNonFinite(low) || numfmt.IsNonFinite(high) || low > high {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadInterval, low, high)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := derivative.New(f, low)
	found := make([]Extremum, 0)

	for i := 0; ; i++ {
		x := low + float64(i)*Step
		if x > high {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		m.TargetPoint = x
		first, err := m.DeriveFirst()
		if err != nil {
			return nil, err
		}

		if math.Abs(numfmt.Round(first, 3)) < Tolerance {
			second, err := m.DeriveSecond()
			if err != nil {
				return nil, err
			}
			y, err := f.At(x)
			if err != nil {
				return nil, err
			}

			if !seen(found, x) {
				kind := Minimum
				if second < 0 {
					kind = Maximum
				}
				found = append(found, Extremum{Location: x, Value: y, Kind: kind})
				if o.logger != nil {
					o.logger.Debug("extremum found", "kind", kind, "x", x, "y", y, "f2", second)
				}
			}
		}

		if o.progress != nil && i%o.interval == 0 {
			o.progress(x, low, high)
		}
	}

	return found, nil
}

// seen reports whether a recorded location matches x at 2 decimals.
func seen(found []Extremum, x float64) bool {
	target := numfmt.Round(x, 2)
	for _, e := range found {
		if numfmt.Round(e.Location, 2) == target {
			return true
		}
	}

	return false
}
