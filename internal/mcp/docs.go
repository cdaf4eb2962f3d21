package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `repolens inspects the project you are working in.

Call project_info to learn the repository's layout before editing: whether it
is a monorepo, which workspace tool governs it (Lerna, Yarn, npm, pnpm, Nx, or
Rush), which package manager its lockfile implies, each sub-project's framework,
and whether TypeScript is in use. The report is plain text and reflects the
tree at the moment of the call; nothing is cached between calls.

hello_world is a connectivity check that also echoes the project name.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "repolens://docs/detection",
		Name:        "detection",
		Title:       "How repolens detects workspaces",
		Description: "The conventions and priority order behind project_info",
		Content: `# Workspace detection

Conventions are checked in a fixed priority order and the first match wins:
Lerna, Yarn Workspaces, npm Workspaces, pnpm Workspaces, Nx, Rush. A root with
leftover config from two tools therefore classifies deterministically.

The package manager comes from lockfile presence (yarn.lock, pnpm-lock.yaml,
package-lock.json, in that order). Workspace declarations support the common
single-level glob form ("packages/*"); other glob shapes are treated as
literal paths. Directories without a readable package.json are skipped.

Framework labels come from a fixed-priority dependency scan, so an app that
depends on both next and react reports Next.js.`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
