package workspace

import (
	"fmt"
	"strings"
)

// Render formats the report as a single human-readable text block.
func (r *ProjectReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", r.Name)
	fmt.Fprintf(&b, "Path: %s\n", r.Path)
	fmt.Fprintf(&b, "package.json: %s\n", presence(r.HasPackageJSON))
	if r.Version != "" {
		fmt.Fprintf(&b, "Version: %s\n", r.Version)
	}
	fmt.Fprintf(&b, "Framework: %s\n", r.Framework)
	fmt.Fprintf(&b, "TypeScript: %s\n", yesNo(r.HasTypeScript))
	fmt.Fprintf(&b, "Package manager: %s\n", r.Monorepo.PackageManager)

	if !r.Monorepo.IsMonorepo {
		b.WriteString("Monorepo: no\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Monorepo: yes (%s)\n", r.Monorepo.Tool)
	if len(r.Monorepo.Workspaces) > 0 {
		b.WriteString("Workspaces:\n")
		for _, pattern := range r.Monorepo.Workspaces {
			fmt.Fprintf(&b, "  - %s\n", pattern)
		}
	}
	fmt.Fprintf(&b, "Sub-projects (%d):\n", len(r.Monorepo.SubProjects))
	for _, sub := range r.Monorepo.SubProjects {
		fmt.Fprintf(&b, "  - %s (%s): %s", sub.Name, sub.RelativePath, sub.Framework)
		if sub.HasTypeScript {
			b.WriteString(", TypeScript")
		}
		if sub.Version != "" {
			fmt.Fprintf(&b, ", v%s", sub.Version)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func presence(present bool) string {
	if present {
		return "present"
	}
	return "missing"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
