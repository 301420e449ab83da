// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/mathengine/extrema"
	"github.com/katalvlaran/mathengine/internal/config"
)

// FindExtremaTool scans an interval for local maxima and minima
type FindExtremaTool struct {
	config config.Config
	logger *slog.Logger
}

// NewFindExtremaTool returns a find_extrema tool reporting progress at
// cfg.ProgressInterval
func NewFindExtremaTool(cfg config.Config, logger *slog.Logger) *FindExtremaTool {
	return &FindExtremaTool{
		config: cfg,
		logger: logger,
	}
}

// GetTool declares mathengine.find_extrema with the equation and scan bounds
func (t *FindExtremaTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolFindExtrema,
		mcp.WithDescription("Scan [low, high] in steps of 0.001 for local maxima and minima"),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation in the free variable, e.g. x^3-3*x")),
		mcp.WithNumber("low", mcp.Required(), mcp.Description("Start of the scan interval")),
		mcp.WithNumber("high", mcp.Required(), mcp.Description("End of the scan interval")),
		variableOption(),
	)
	return tool
}

// Handle scans [low, high] and lists each extremum with its kind; scan
// progress goes to the debug log
func (t *FindExtremaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	equation, err := requiredString(req, "equation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	low, err := requiredNumber(req, "low")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	high, err := requiredNumber(req, "high")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	progress := func(current, lo, hi float64) {
		t.logger.Debug("extrema scan", "equation", equation, "x", current, "low", lo, "high", hi)
	}
	found, err := extrema.FindExtrema(ctx, newFunction(req, t.config, equation), low, high,
		extrema.WithLogger(t.logger),
		extrema.WithProgress(progress),
		extrema.WithProgressInterval(t.config.ProgressInterval),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find extrema: %v", err)), nil
	}

	entries := make([]ExtremumEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, ExtremumEntry{
			Kind:     e.Kind.String(),
			Location: Number(e.Location),
			Value:    Number(e.Value),
		})
	}

	return jsonResult(ExtremaResult{
		Equation: equation,
		Low:      Number(low),
		High:     Number(high),
		Count:    len(entries),
		Extrema:  entries,
	})
}
