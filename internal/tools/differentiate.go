// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/mathengine/derivative"
	"github.com/katalvlaran/mathengine/internal/config"
)

// DifferentiateTool estimates derivatives with the five-point stencil
type DifferentiateTool struct {
	config config.Config
	logger *slog.Logger
}

// NewDifferentiateTool returns a differentiate tool
func NewDifferentiateTool(cfg config.Config, logger *slog.Logger) *DifferentiateTool {
	return &DifferentiateTool{
		config: cfg,
		logger: logger,
	}
}

// GetTool declares mathengine.differentiate with the equation and point x
func (t *DifferentiateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDifferentiate,
		mcp.WithDescription("Estimate the first and second derivative of an equation at a point"),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation in the free variable, e.g. x^3")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Point at which to differentiate")),
		variableOption(),
	)
	return tool
}

// Handle returns f'(x) and f''(x) as JSON
func (t *DifferentiateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	equation, err := requiredString(req, "equation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	x, err := requiredNumber(req, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	m := derivative.New(newFunction(req, t.config, equation), x)
	first, err := m.DeriveFirst()
	if err != nil {
		t.logger.Debug("differentiate failed", "equation", equation, "x", x, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to differentiate: %v", err)), nil
	}
	second, err := m.DeriveSecond()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to differentiate: %v", err)), nil
	}

	return jsonResult(DifferentiateResult{
		Equation: equation,
		Point:    Number(x),
		First:    Number(first),
		Second:   Number(second),
	})
}
