package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/repolens/repolens-mcp/internal/mcp"
	"github.com/repolens/repolens-mcp/internal/workspace"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// yarnWorkspaceFixture lays out a small yarn-workspaces monorepo.
func yarnWorkspaceFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"),
		`{"name":"mono","version":"1.0.0","workspaces":["apps/*"]}`)
	writeFile(t, filepath.Join(root, "yarn.lock"), "")
	writeFile(t, filepath.Join(root, "apps", "web", "package.json"),
		`{"name":"web","dependencies":{"vue":"^3"}}`)
	return root
}

func connect(t *testing.T, root string) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(mcp.Config{
		Inspector:   workspace.NewService(nil),
		DefaultRoot: root,
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		serverSession.Close()
	})
	return session
}

func toolText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestServer_ListsExactlyTwoTools(t *testing.T) {
	session := connect(t, t.TempDir())

	tools, err := session.ListTools(context.Background(), &sdkmcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"hello_world", "project_info"}, names)
}

func TestServer_HelloWorld(t *testing.T) {
	root := yarnWorkspaceFixture(t)
	session := connect(t, root)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "hello_world",
		Arguments: map[string]any{"name": "Ada"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, toolText(t, result), `Hello, Ada! You are working in project "mono".`)
}

func TestServer_HelloWorldDefaultsName(t *testing.T) {
	session := connect(t, t.TempDir())

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "hello_world",
	})
	require.NoError(t, err)
	require.Contains(t, toolText(t, result), "Hello, World!")
}

func TestServer_ProjectInfo(t *testing.T) {
	root := yarnWorkspaceFixture(t)
	session := connect(t, root)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "project_info",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := toolText(t, result)
	require.Contains(t, text, "Project: mono")
	require.Contains(t, text, "Monorepo: yes (Yarn Workspaces)")
	require.Contains(t, text, "Package manager: Yarn")
	require.Contains(t, text, "- web (apps/web): Vue.js")
}

func TestServer_ProjectInfoExplicitPath(t *testing.T) {
	root := yarnWorkspaceFixture(t)
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "package.json"), `{"name":"elsewhere"}`)
	session := connect(t, root)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "project_info",
		Arguments: map[string]any{"path": other},
	})
	require.NoError(t, err)
	require.Contains(t, toolText(t, result), "Project: elsewhere")
}

func TestServer_ProjectInfoDegradedRootStillAnswers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "broken",`)
	session := connect(t, root)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "project_info",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, toolText(t, result), "package.json: missing")
}

func TestServer_UnknownToolIsAnError(t *testing.T) {
	session := connect(t, t.TempDir())

	_, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "does_not_exist",
	})
	require.Error(t, err)
}
