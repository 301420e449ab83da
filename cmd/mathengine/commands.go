// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathengine/derivative"
	"github.com/katalvlaran/mathengine/evaluator"
	"github.com/katalvlaran/mathengine/extrema"
	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/internal/numfmt"
	"github.com/katalvlaran/mathengine/internal/server"
	"github.com/katalvlaran/mathengine/quadrature"
)

func (a *app) newFunction(equation string) *function.Function {
	return function.New(equation, function.WithVariable(a.cfg.Variable))
}

func newEvalCmd(a *app) *cobra.Command {
	var bindings map[string]string

	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := evaluator.New()
			v, err := e.EvaluateWith(args[0], bindings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numfmt.Format(v))

			return nil
		},
	}
	cmd.Flags().StringToStringVar(&bindings, "bind", nil, "Substitute name=value before evaluation")

	return cmd
}

func newIntegrateCmd(a *app) *cobra.Command {
	var (
		lower, upper float64
		steps        int
		rule         string
		showFormula  bool
	)

	cmd := &cobra.Command{
		Use:   "integrate EQUATION",
		Short: "Approximate a definite integral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Steps
			}
			kind := a.cfg.QuadratureKind()
			if cmd.Flags().Changed("rule") {
				var err error
				if kind, err = quadrature.ParseKind(rule); err != nil {
					return err
				}
			}

			res, err := quadrature.Integrate(cmd.Context(), a.newFunction(args[0]), lower, upper, steps, kind)
			if err != nil {
				return err
			}
			a.logger.Debug("integrated", "rule", kind, "steps", steps, "ordinates", len(res.Ordinates))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, numfmt.Format(res.Value))
			if showFormula {
				formula, err := quadrature.FormulaString(kind, res)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formula)
			}

			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&lower, "lower", 0, "Lower limit")
	flags.Float64Var(&upper, "upper", 1, "Upper limit")
	flags.IntVar(&steps, "steps", 0, "Number of strips (default from config)")
	flags.StringVar(&rule, "rule", "", "midordinate, trapezium or simpson (default from config)")
	flags.BoolVar(&showFormula, "formula", false, "Also print the expanded formula")

	return cmd
}

func newDeriveCmd(a *app) *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "derive EQUATION",
		Short: "Estimate first and second derivatives at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := derivative.New(a.newFunction(args[0]), at)
			first, err := m.DeriveFirst()
			if err != nil {
				return err
			}
			second, err := m.DeriveSecond()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "f'(%s) = %s\n", numfmt.Format(at), numfmt.Format(numfmt.Round(first, 6)))
			fmt.Fprintf(out, "f''(%s) = %s\n", numfmt.Format(at), numfmt.Format(numfmt.Round(second, 6)))

			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Point at which to differentiate")

	return cmd
}

func newTangentCmd(a *app) *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "tangent EQUATION",
		Short: "Print the tangent and normal lines at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := derivative.Tangent(a.newFunction(args[0]), at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tangent:", line.Tangent)
			fmt.Fprintln(out, "normal: ", line.Normal)

			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Point of contact")

	return cmd
}

func newExtremaCmd(a *app) *cobra.Command {
	var (
		low, high    float64
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "extrema EQUATION",
		Short: "Scan an interval for local maxima and minima",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []extrema.Option{
				extrema.WithLogger(a.logger),
				extrema.WithProgressInterval(a.cfg.ProgressInterval),
			}
			if showProgress {
				errOut := cmd.ErrOrStderr()
				opts = append(opts, extrema.WithProgress(func(current, lo, hi float64) {
					pct := 100.0
					if hi > lo {
						pct = math.Min(100, 100*(current-lo)/(hi-lo))
					}
					fmt.Fprintf(errOut, "\rscanning %5.1f%%", pct)
				}))
			}

			found, err := extrema.FindExtrema(cmd.Context(), a.newFunction(args[0]), low, high, opts...)
			if showProgress {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, "no extrema found")
				return nil
			}
			for _, e := range found {
				fmt.Fprintf(out, "%s at (%s, %s)\n", e.Kind.Label(),
					numfmt.Format(numfmt.Round(e.Location, 3)), numfmt.Format(numfmt.Round(e.Value, 3)))
			}

			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&low, "low", -10, "Start of the scan interval")
	flags.Float64Var(&high, "high", 10, "End of the scan interval")
	flags.BoolVar(&showProgress, "progress", false, "Report scan progress on stderr")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.NewServer(a.cfg, a.logger).Start(cmd.Context())
		},
	}
}
