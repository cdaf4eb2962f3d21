package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// detection carries a claimed convention and its raw workspace declarations.
type detection struct {
	tool     Tool
	patterns []string
}

// conventionDetectors is evaluated in priority order; the first detector that
// claims the root wins even when later ones would also match. The fixed total
// order keeps classification deterministic for roots carrying leftover config
// from more than one tool.
var conventionDetectors = []struct {
	tool  Tool
	claim func(root string) ([]string, bool)
}{
	{ToolLerna, detectLerna},
	{ToolYarnWorkspaces, detectYarnWorkspaces},
	{ToolNpmWorkspaces, detectNpmWorkspaces},
	{ToolPnpmWorkspaces, detectPnpmWorkspaces},
	{ToolNx, detectNx},
	{ToolRush, detectRush},
}

func detectConvention(root string) detection {
	for _, detector := range conventionDetectors {
		if patterns, ok := detector.claim(root); ok {
			return detection{tool: detector.tool, patterns: patterns}
		}
	}
	return detection{tool: ToolNone}
}

func detectLerna(root string) ([]string, bool) {
	var cfg struct {
		Packages []string `json:"packages"`
	}
	if !readJSONFile(filepath.Join(root, "lerna.json"), &cfg) {
		return nil, false
	}
	if len(cfg.Packages) == 0 {
		return []string{"packages/*"}, true
	}
	return cfg.Packages, true
}

func detectYarnWorkspaces(root string) ([]string, bool) {
	manifest, ok := readManifest(filepath.Join(root, "package.json"))
	if !ok || !manifest.Workspaces.Declared {
		return nil, false
	}
	if !fileExists(filepath.Join(root, "yarn.lock")) {
		return nil, false
	}
	return manifest.Workspaces.Patterns, true
}

func detectNpmWorkspaces(root string) ([]string, bool) {
	manifest, ok := readManifest(filepath.Join(root, "package.json"))
	if !ok || !manifest.Workspaces.Declared {
		return nil, false
	}
	if !fileExists(filepath.Join(root, "package-lock.json")) {
		return nil, false
	}
	if fileExists(filepath.Join(root, "yarn.lock")) {
		return nil, false
	}
	return manifest.Workspaces.Patterns, true
}

// detectPnpmWorkspaces reads the packages list from pnpm-workspace.yaml. The
// parse is bounded to the top-level packages key; the rest of the file is
// ignored.
func detectPnpmWorkspaces(root string) ([]string, bool) {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil, false
	}
	var cfg struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, false
	}
	if len(cfg.Packages) == 0 {
		return nil, false
	}
	return cfg.Packages, true
}

// nxProject tolerates both workspace.json project shapes: a bare path string,
// or an object with a root field.
type nxProject struct {
	Root string `json:"root"`
}

func (p *nxProject) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		p.Root = path
		return nil
	}
	type alias nxProject
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Root = obj.Root
	return nil
}

func detectNx(root string) ([]string, bool) {
	if !fileExists(filepath.Join(root, "nx.json")) {
		return nil, false
	}

	var ws struct {
		Projects map[string]nxProject `json:"projects"`
	}
	if readJSONFile(filepath.Join(root, "workspace.json"), &ws) && len(ws.Projects) > 0 {
		names := make([]string, 0, len(ws.Projects))
		for name := range ws.Projects {
			names = append(names, name)
		}
		sort.Strings(names)
		patterns := make([]string, 0, len(names))
		for _, name := range names {
			if ws.Projects[name].Root != "" {
				patterns = append(patterns, ws.Projects[name].Root)
			}
		}
		return patterns, true
	}

	// Without workspace.json, fall back to the conventional apps/ and libs/
	// layout.
	var patterns []string
	patterns = append(patterns, expandPattern(root, "apps/*")...)
	patterns = append(patterns, expandPattern(root, "libs/*")...)
	return patterns, true
}

func detectRush(root string) ([]string, bool) {
	var cfg struct {
		Projects []struct {
			ProjectFolder string `json:"projectFolder"`
		} `json:"projects"`
	}
	if !readJSONFile(filepath.Join(root, "rush.json"), &cfg) {
		return nil, false
	}
	patterns := make([]string, 0, len(cfg.Projects))
	for _, proj := range cfg.Projects {
		if proj.ProjectFolder != "" {
			patterns = append(patterns, proj.ProjectFolder)
		}
	}
	return patterns, true
}
