// SPDX-License-Identifier: MIT

package extrema_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathengine/evaluator"
	"github.com/katalvlaran/mathengine/extrema"
	"github.com/katalvlaran/mathengine/function"
)

func TestFindExtrema_ParabolaMinimum(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.New("x^2-3"), -5, 5)
	require.NoError(t, err)
	require.Len(t, found, 1)

	assert.Equal(t, extrema.Minimum, found[0].Kind)
	assert.InDelta(t, 0.0, found[0].Location, 0.005)
	assert.InDelta(t, -3.0, found[0].Value, 1e-4)
}

func TestFindExtrema_ParabolaMaximum(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.New("4-x*x"), -1, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)

	assert.Equal(t, extrema.Maximum, found[0].Kind)
	assert.InDelta(t, 0.0, found[0].Location, 0.005)
	assert.InDelta(t, 4.0, found[0].Value, 1e-4)
}

func TestFindExtrema_SineScanOrder(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.Func(math.Sin), 0, 6.3)
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, extrema.Maximum, found[0].Kind)
	assert.InDelta(t, math.Pi/2, found[0].Location, 0.005)
	assert.InDelta(t, 1.0, found[0].Value, 1e-4)

	assert.Equal(t, extrema.Minimum, found[1].Kind)
	assert.InDelta(t, 3*math.Pi/2, found[1].Location, 0.005)
	assert.InDelta(t, -1.0, found[1].Value, 1e-4)
}

func TestFindExtrema_NoCriticalPoint(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.Func(func(x float64) float64 { return 3*x + 1 }), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindExtrema_NaNDerivativeSkipped(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.Func(func(float64) float64 { return math.NaN() }), 0, 0.1)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindExtrema_SinglePoint(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.Func(func(x float64) float64 { return x * x }), 0, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, extrema.Minimum, found[0].Kind)
}

func TestFindExtrema_BadInterval(t *testing.T) {
	f := function.Func(math.Sin)
	for _, tc := range []struct {
		name      string
		low, high float64
	}{
		{"reversed", 1, 0},
		{"nan", math.NaN(), 1},
		{"inf", 0, math.Inf(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			found, err := extrema.FindExtrema(context.Background(), f, tc.low, tc.high)
			assert.ErrorIs(t, err, extrema.ErrBadInterval)
			assert.Nil(t, found)
		})
	}
}

func TestFindExtrema_EvaluationErrorDiscardsResults(t *testing.T) {
	found, err := extrema.FindExtrema(context.Background(), function.New("x+"), -1, 1)
	assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)
	assert.Nil(t, found)
}

func TestFindExtrema_ErrorAfterFirstHit(t *testing.T) {
	boom := errors.New("boom")
	f := evaluableFunc(func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, boom
		}
		return x * x, nil
	})

	found, err := extrema.FindExtrema(context.Background(), f, 0, 1)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, found)
}

// TestFindExtrema_DuplicateLocationStillEvaluated scans a flat function where
// both points are critical and round to the same location. The duplicate is
// still differentiated and evaluated, so a failure there aborts the scan.
func TestFindExtrema_DuplicateLocationStillEvaluated(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := evaluableFunc(func(float64) (float64, error) {
		calls++
		if calls > 14 {
			return 0, boom
		}
		return 0, nil
	})

	found, err := extrema.FindExtrema(context.Background(), f, 0, 0.001)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, found)
	assert.Equal(t, 15, calls)
}

func TestFindExtrema_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := extrema.FindExtrema(ctx, function.Func(math.Sin), 0, 1)
	assert.ErrorIs(t, err, extrema.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, found)
}

func TestFindExtrema_CancelFromProgress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	progress := func(current, low, high float64) {
		calls++
		if calls == 2 {
			cancel()
		}
	}

	_, err := extrema.FindExtrema(ctx, function.Func(math.Sin), 0, 10, extrema.WithProgress(progress))
	assert.ErrorIs(t, err, extrema.ErrCancelled)
	assert.Equal(t, 2, calls)
}

func TestFindExtrema_ProgressInterval(t *testing.T) {
	var positions []float64
	progress := func(current, low, high float64) {
		assert.Equal(t, 0.0, low)
		assert.Equal(t, 1.0, high)
		positions = append(positions, current)
	}

	_, err := extrema.FindExtrema(context.Background(), function.Func(math.Sin), 0, 1,
		extrema.WithProgress(progress),
		extrema.WithProgressInterval(250),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(positions), 4)
	assert.Equal(t, 0.0, positions[0])
	assert.InDelta(t, 0.25, positions[1], 1e-9)

	assert.Panics(t, func() { extrema.WithProgressInterval(0) })
}

func TestFindExtrema_LogsAcceptedExtrema(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := extrema.FindExtrema(context.Background(), function.Func(math.Sin), 0, 3, extrema.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "extremum found")
	assert.Contains(t, buf.String(), "kind=maximum")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "maximum", extrema.Maximum.String())
	assert.Equal(t, "Local Minimum", extrema.Minimum.Label())
	assert.Equal(t, "Kind(7)", extrema.Kind(7).String())

	raw, err := json.Marshal(extrema.Extremum{Location: 1, Value: 2, Kind: extrema.Maximum})
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":1,"value":2,"kind":"maximum"}`, string(raw))
}

type evaluableFunc func(float64) (float64, error)

func (fn evaluableFunc) At(x float64) (float64, error) { return fn(x) }
