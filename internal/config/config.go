// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the mathengine CLI and MCP
// server from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mathengine/extrema"
	"github.com/katalvlaran/mathengine/internal/logging"
	"github.com/katalvlaran/mathengine/quadrature"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds defaults shared by every entry point.
type Config struct {
	// Variable is the free variable name used when parsing equations.
	Variable string `yaml:"variable"`

	// Steps is the default strip count for numerical integration.
	Steps int `yaml:"steps"`

	// Rule names the default quadrature rule (midordinate|trapezium|simpson).
	Rule string `yaml:"rule"`

	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"log_level"`

	// ProgressInterval is the extrema scan steps between progress reports.
	ProgressInterval int `yaml:"progress_interval"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Variable:         "x",
		Steps:            100,
		Rule:             quadrature.KindSimpson.String(),
		LogLevel:         "info",
		ProgressInterval: extrema.DefaultProgressInterval,
	}
}

// Load reads path over Default and validates the result. Fields missing
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects an empty variable, non-positive counts, and unknown
// rule or level names.
func (c Config) Validate() error {
	if c.Variable == "" {
		return fmt.Errorf("%w: variable must not be empty", ErrInvalid)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be > 0, got %d", ErrInvalid, c.Steps)
	}
	if c.ProgressInterval <= 0 {
		return fmt.Errorf("%w: progress_interval must be > 0, got %d", ErrInvalid, c.ProgressInterval)
	}
	kind, err := quadrature.ParseKind(c.Rule)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if kind == quadrature.KindSimpson && c.Steps%2 != 0 {
		return fmt.Errorf("%w: simpson needs even steps, got %d", ErrInvalid, c.Steps)
	}
	if _, err = logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// QuadratureKind returns the parsed Rule. Call after Validate.
func (c Config) QuadratureKind() quadrature.Kind {
	kind, _ := quadrature.ParseKind(c.Rule)

	return kind
}
