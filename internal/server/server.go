// SPDX-License-Identifier: MIT

// Package server serves the mathengine tools over MCP stdio.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/mathengine/internal/config"
	"github.com/katalvlaran/mathengine/internal/tools"
)

// Server identity reported to MCP clients
const (
	Name    = "mathengine"
	Version = "0.1.0"
)

// MathServer represents the mathengine MCP server
type MathServer struct {
	mcpServer *server.MCPServer
	config    config.Config
	logger    *slog.Logger
}

// NewServer creates a new MCP server with every tool registered
func NewServer(cfg config.Config, logger *slog.Logger) *MathServer {
	s := &MathServer{
		mcpServer: server.NewMCPServer(Name, Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		config: cfg,
		logger: logger,
	}
	s.registerTools()

	return s
}

// MCPServer exposes the underlying server for in-process transports
func (s *MathServer) MCPServer() *server.MCPServer { return s.mcpServer }

// Start serves stdin/stdout until the client disconnects or ctx is done
func (s *MathServer) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve runs the stdio transport over in and out. Cancelling ctx or
// closing in is a clean shutdown.
func (s *MathServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("starting MCP server", "name", Name, "version", Version,
		"variable", s.config.Variable, "rule", s.config.Rule, "steps", s.config.Steps)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdio.Listen(ctx, in, out); err != nil && !shutdown(err) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	s.logger.Info("MCP server stopped")

	return nil
}

func (s *MathServer) registerTools() {
	evaluateTool := tools.NewEvaluateTool(s.config, s.logger)
	s.mcpServer.AddTool(evaluateTool.GetTool(), evaluateTool.Handle)

	integrateTool := tools.NewIntegrateTool(s.config, s.logger)
	s.mcpServer.AddTool(integrateTool.GetTool(), integrateTool.Handle)

	differentiateTool := tools.NewDifferentiateTool(s.config, s.logger)
	s.mcpServer.AddTool(differentiateTool.GetTool(), differentiateTool.Handle)

	tangentTool := tools.NewTangentTool(s.config, s.logger)
	s.mcpServer.AddTool(tangentTool.GetTool(), tangentTool.Handle)

	extremaTool := tools.NewFindExtremaTool(s.config, s.logger)
	s.mcpServer.AddTool(extremaTool.GetTool(), extremaTool.Handle)
}

// shutdown reports whether err only signals the end of the session.
func shutdown(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF)
}
