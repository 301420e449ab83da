// SPDX-License-Identifier: MIT

// Package tools exposes mathengine operations as MCP tools.
package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/internal/config"
)

// requiredString extracts a non-empty string argument
func requiredString(req mcp.CallToolRequest, key string) (string, error) {
	v := mcp.ParseString(req, key, "")
	if v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}

	return v, nil
}

// requiredNumber extracts a finite numeric argument
func requiredNumber(req mcp.CallToolRequest, key string) (float64, error) {
	v := mcp.ParseFloat64(req, key, math.NaN())
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s parameter is required", key)
	}

	return v, nil
}

// stepsArgument extracts the strip count, defaulting to the config value
func stepsArgument(req mcp.CallToolRequest, cfg config.Config) (int, error) {
	v := mcp.ParseFloat64(req, "steps", float64(cfg.Steps))
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("steps must be an integer, got %v", v)
	}

	return int(v), nil
}

// newFunction builds a Function using the request variable or the config default
func newFunction(req mcp.CallToolRequest, cfg config.Config, equation string) *function.Function {
	variable := mcp.ParseString(req, "variable", cfg.Variable)
	if variable == "" {
		variable = cfg.Variable
	}

	return function.New(equation, function.WithVariable(variable))
}

// jsonResult marshals v as indented JSON text
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// variableOption is shared by every tool that takes an equation
func variableOption() mcp.ToolOption {
	return mcp.WithString("variable", mcp.Description("Free variable name in the equation (default from config)"))
}
