// SPDX-License-Identifier: MIT

package extrema

import (
	"errors"
	"fmt"
)

const (
	// Step is the scan increment.
	Step = 0.001

	// Tolerance bounds |f'| (rounded to 3 decimals) at a critical point.
	Tolerance = 0.0025

	// DefaultProgressInterval is the number of scan steps between progress
	// callbacks.
	DefaultProgressInterval = 100
)

var (
	// ErrBadInterval indicates low > high or a non-finite bound.
	ErrBadInterval = errors.New("extrema: invalid interval")

	// ErrCancelled wraps ctx.Err() when a scan is stopped early.
	ErrCancelled = errors.New("extrema: cancelled")
)

// Kind classifies an extremum.
type Kind int

const (
	// Minimum marks a local minimum (f'' >= 0).
	Minimum Kind = iota

	// Maximum marks a local maximum (f'' < 0).
	Maximum
)

func (k Kind) String() string {
	switch k {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label is the display form, e.g. "Local Maximum".
func (k Kind) Label() string {
	switch k {
	case Minimum:
		return "Local Minimum"
	case Maximum:
		return "Local Maximum"
	}

	return k.String()
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Extremum is one classified critical point.
type Extremum struct {
	Location float64 `json:"location"`
	Value    float64 `json:"value"`
	Kind     Kind    `json:"kind"`
}

// Progress observes the scan position. It must not affect results.
type Progress func(current, low, high float64)
