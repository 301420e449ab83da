// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/mathengine/internal/config"
	"github.com/katalvlaran/mathengine/quadrature"
)

// IntegrateTool approximates definite integrals with a quadrature rule
type IntegrateTool struct {
	config config.Config
	logger *slog.Logger
}

// NewIntegrateTool returns an integrate tool whose steps and rule default
// to cfg
func NewIntegrateTool(cfg config.Config, logger *slog.Logger) *IntegrateTool {
	return &IntegrateTool{
		config: cfg,
		logger: logger,
	}
}

// GetTool declares mathengine.integrate with limits, optional steps, rule
// and variable
func (t *IntegrateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolIntegrate,
		mcp.WithDescription("Approximate the definite integral of an equation over [lower, upper]"),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation in the free variable, e.g. x^2-3")),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower limit")),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper limit")),
		mcp.WithNumber("steps", mcp.Description("Number of strips (default from config; even for simpson)")),
		mcp.WithString("rule", mcp.Description("midordinate, trapezium or simpson (default from config)")),
		variableOption(),
	)
	return tool
}

// Handle integrates the equation over [lower, upper] and returns the value
// with its expanded formula; ctx cancels a long run between samples
func (t *IntegrateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	equation, err := requiredString(req, "equation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lower, err := requiredNumber(req, "lower")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	upper, err := requiredNumber(req, "upper")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	steps, err := stepsArgument(req, t.config)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kind, err := quadrature.ParseKind(mcp.ParseString(req, "rule", t.config.Rule))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := quadrature.Integrate(ctx, newFunction(req, t.config, equation), lower, upper, steps, kind)
	if err != nil {
		t.logger.Debug("integrate failed", "equation", equation, "rule", kind, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to integrate: %v", err)), nil
	}
	formula, err := quadrature.FormulaString(kind, res)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(IntegrateResult{
		Equation: equation,
		Rule:     kind.String(),
		Lower:    Number(lower),
		Upper:    Number(upper),
		Steps:    steps,
		Value:    Number(res.Value),
		Formula:  formula,
	})
}
