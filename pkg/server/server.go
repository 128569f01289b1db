// Package server provides the MCP server implementation for the amap
// integration.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/amaptools/amapmcp/pkg/amap"
	"github.com/amaptools/amapmcp/pkg/tools"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "amap-mcp-server"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"
)

// Server encapsulates the MCP server with the amap tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a new amap MCP server with all tools registered.
// The configuration is read once at startup; a missing API key is
// reported per-call as text rather than failing here.
func NewServer(cfg amap.Config) (*Server, error) {
	logger := slog.Default()
	logger.Info("initializing amap MCP server",
		"name", ServerName,
		"version", ServerVersion,
		"has_key", cfg.HasKey())

	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	client := amap.NewClient(cfg)
	registry := tools.NewRegistry(logger, client)
	registry.RegisterTools(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}
