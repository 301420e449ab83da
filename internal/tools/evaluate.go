// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/mathengine/evaluator"
	"github.com/katalvlaran/mathengine/internal/config"
)

// EvaluateTool reduces one arithmetic expression to a number
type EvaluateTool struct {
	config config.Config
	logger *slog.Logger
}

// NewEvaluateTool returns an evaluate tool; each call uses a fresh Evaluator
func NewEvaluateTool(cfg config.Config, logger *slog.Logger) *EvaluateTool {
	return &EvaluateTool{
		config: cfg,
		logger: logger,
	}
}

// GetTool declares mathengine.evaluate with its required expression argument
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Evaluate an arithmetic expression (+ - * / ^, sin cos tan asin acos atan abs sqrt ln e, pi)"),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression to evaluate, e.g. 2*(3+4)^2")),
	)
	return tool
}

// Handle evaluates the expression and returns it with its value as JSON;
// syntax errors become tool errors, NaN and ±Inf are valid values
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := requiredString(req, "expression")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	value, err := evaluator.New().Evaluate(expression)
	if err != nil {
		t.logger.Debug("evaluate failed", "expression", expression, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate: %v", err)), nil
	}

	return jsonResult(EvaluateResult{Expression: expression, Value: Number(value)})
}
