package testserver

import (
	"net/http/httptest"
	"testing"

	"github.com/repolens/repolens-mcp/internal/mcp"
	"github.com/repolens/repolens-mcp/internal/workspace"
)

// TestServer hosts the MCP server behind the JSON-RPC HTTP shim so functional
// tests can drive tools over plain POSTs.
type TestServer struct {
	Server *httptest.Server
	Root   string
}

// New starts a server inspecting root by default.
func New(t *testing.T, root string) *TestServer {
	t.Helper()

	server := mcp.NewServer(mcp.Config{
		Inspector:   workspace.NewService(nil),
		DefaultRoot: root,
	})

	httpServer := httptest.NewServer(mcp.NewHTTPHandler(server, nil))
	t.Cleanup(httpServer.Close)

	return &TestServer{Server: httpServer, Root: root}
}
