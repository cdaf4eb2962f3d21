package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HelloWorldInput is the input for the hello_world tool.
type HelloWorldInput struct {
	Name string `json:"name,omitempty" jsonschema:"Name to greet (defaults to World)"`
}

// ProjectInfoInput is the input for the project_info tool.
type ProjectInfoInput struct {
	Path string `json:"path,omitempty" jsonschema:"Directory to inspect (defaults to the detected project root)"`
}

// registerTools registers the tool catalog on the SDK server.
func registerTools(server *sdkmcp.Server, cfg Config) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "hello_world",
		Description: "Say hello and report the name of the current project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in HelloWorldInput) (*sdkmcp.CallToolResult, any, error) {
		name := in.Name
		if name == "" {
			name = "World"
		}
		project := cfg.Inspector.ProjectName(ctx, cfg.DefaultRoot)
		return textResult(fmt.Sprintf("Hello, %s! You are working in project %q.", name, project)), nil, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_info",
		Description: "Inspect a source tree and report its monorepo topology, workspace tool, package manager, framework, and TypeScript usage",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ProjectInfoInput) (*sdkmcp.CallToolResult, any, error) {
		root := in.Path
		if root == "" {
			root = cfg.DefaultRoot
		}
		// Inspect never fails; degraded inputs produce a degraded report
		// rather than a protocol error.
		report := cfg.Inspector.Inspect(ctx, root)
		return textResult(report.Render()), nil, nil
	})
}

func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}
