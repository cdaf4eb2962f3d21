package mcp

import (
	"context"
	"log/slog"

	"github.com/repolens/repolens-mcp/internal/workspace"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Inspector defines the inspection operations needed by MCP.
type Inspector interface {
	Inspect(ctx context.Context, root string) *workspace.ProjectReport
	ProjectName(ctx context.Context, root string) string
}

// Config contains server configuration.
type Config struct {
	Inspector Inspector
	// DefaultRoot is inspected when a tool call does not name a path.
	DefaultRoot string
	Logger      *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "repolens",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(requestIDMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
