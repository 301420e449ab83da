// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathengine/evaluator"
	"github.com/katalvlaran/mathengine/internal/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestEval(t *testing.T) {
	out, _, err := run(t, "eval", "2*(3+4)")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, _, err = run(t, "eval", "a*b+c", "--bind", "a=2,b=3,c=1")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, "eval", "1/0")
	require.NoError(t, err)
	assert.Equal(t, "Infinity\n", out)

	_, _, err = run(t, "eval", "2+")
	assert.ErrorIs(t, err, evaluator.ErrInvalidFunction)
}

func TestIntegrate(t *testing.T) {
	out, _, err := run(t, "integrate", "x^2", "--lower", "0", "--upper", "2", "--steps", "4", "--rule", "mid", "--formula")
	require.NoError(t, err)
	assert.Equal(t, "2.625\n0.5 * ( + 0.0625 + 0.5625 + 1.5625 + 3.0625)\n", out)

	out, _, err = run(t, "integrate", "t^2", "--variable", "t", "--upper", "3", "--steps", "2")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	_, _, err = run(t, "integrate", "x", "--rule", "romberg")
	assert.Error(t, err)
}

func TestDeriveAndTangent(t *testing.T) {
	out, _, err := run(t, "derive", "x^2", "--at", "3")
	require.NoError(t, err)
	assert.Equal(t, "f'(3) = 6\nf''(3) = 2\n", out)

	out, _, err = run(t, "tangent", "x^2", "--at", "3")
	require.NoError(t, err)
	assert.Equal(t, "tangent: y - 9 = 6 (x - 3)\nnormal:  y - 9 = -0.167 (x - 3)\n", out)
}

func TestExtrema(t *testing.T) {
	out, errOut, err := run(t, "extrema", "x^2-3", "--low", "-1", "--high", "1", "--progress")
	require.NoError(t, err)
	assert.Equal(t, "Local Minimum at (-0.001, -3)\n", out)
	assert.Contains(t, errOut, "scanning")

	out, _, err = run(t, "extrema", "3*x", "--low", "0", "--high", "1")
	require.NoError(t, err)
	assert.Equal(t, "no extrema found\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variable: s\nsteps: 4\nrule: midordinate\n"), 0o600))

	out, _, err := run(t, "--config", path, "integrate", "s^2", "--upper", "2")
	require.NoError(t, err)
	assert.Equal(t, "2.625\n", out)

	require.NoError(t, os.WriteFile(path, []byte("rule: romberg\n"), 0o600))
	_, _, err = run(t, "--config", path, "eval", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "--log-level", "loud", "eval", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
