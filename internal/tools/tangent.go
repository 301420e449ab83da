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

// TangentTool renders the tangent and normal lines at a point
type TangentTool struct {
	config config.Config
	logger *slog.Logger
}

// NewTangentTool returns a tangent tool
func NewTangentTool(cfg config.Config, logger *slog.Logger) *TangentTool {
	return &TangentTool{
		config: cfg,
		logger: logger,
	}
}

// GetTool declares mathengine.tangent with the equation and point of contact
func (t *TangentTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolTangent,
		mcp.WithDescription("Render the tangent and normal line equations of an equation at a point"),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation in the free variable, e.g. x^2")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Point of contact")),
		variableOption(),
	)
	return tool
}

// Handle returns both line equations and their gradients; an undefined
// gradient is reported as a tool error
func (t *TangentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	equation, err := requiredString(req, "equation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	x, err := requiredNumber(req, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	line, err := derivative.Tangent(newFunction(req, t.config, equation), x)
	if err != nil {
		t.logger.Debug("tangent failed", "equation", equation, "x", x, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute tangent: %v", err)), nil
	}

	return jsonResult(TangentResult{
		Equation:       equation,
		Point:          Number(line.Point),
		Value:          Number(line.Value),
		Gradient:       Number(line.Gradient),
		NormalGradient: Number(line.NormalGradient),
		Tangent:        line.Tangent,
		Normal:         line.Normal,
	})
}
