// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathengine/internal/config"
	"github.com/katalvlaran/mathengine/internal/logging"
)

// app carries state resolved in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	variable   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "mathengine",
		Short:         "Numerical evaluation, integration and differentiation of equations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.variable, "variable", "", "Free variable name in equations")

	root.AddCommand(
		newEvalCmd(a),
		newIntegrateCmd(a),
		newDeriveCmd(a),
		newTangentCmd(a),
		newExtremaCmd(a),
		newServeCmd(a),
	)

	return root
}

// resolve loads the config file, applies flag overrides and builds the
// logger on stderr.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("variable") {
		cfg.Variable = a.variable
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("config resolved", "path", a.configPath, "config", cfg)

	return nil
}
