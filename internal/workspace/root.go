package workspace

import (
	"os"
	"path/filepath"
)

// rootEnvVars are consulted in order when picking the directory to inspect.
// The first variable whose value names an existing path wins.
var rootEnvVars = []string{
	"CURSOR_PROJECT_PATH",
	"VSCODE_CWD",
	"PROJECT_ROOT",
	"WORKSPACE_FOLDER",
}

// ResolveRoot picks the root directory for inspection: an editor-provided
// environment variable, else the nearest ancestor of the working directory
// holding a package.json, else the working directory itself.
func ResolveRoot() string {
	for _, key := range rootEnvVars {
		if path := os.Getenv(key); path != "" && fileExists(path) {
			return path
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if fileExists(filepath.Join(dir, "package.json")) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}
