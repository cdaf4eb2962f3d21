package workspace

import (
	"context"
	"log/slog"
	"path/filepath"
)

// Service runs project inspections. Every inspection is a fresh read-only
// traversal of the tree; the service holds no state besides its logger.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new inspection service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Inspect produces a report for root. It never fails: a missing manifest, an
// unparseable config file, or an unsupported workspace declaration each
// degrade to a named default, and the report is still produced.
func (s *Service) Inspect(ctx context.Context, root string) *ProjectReport {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	report := &ProjectReport{
		Name:      filepath.Base(root),
		Path:      root,
		Framework: FrameworkUnknown,
		Monorepo: MonorepoInfo{
			Tool:           ToolNone,
			PackageManager: DetectPackageManager(root),
			Workspaces:     []string{},
			SubProjects:    []SubProject{},
		},
	}

	manifest, ok := readManifest(filepath.Join(root, "package.json"))
	if ok {
		report.HasPackageJSON = true
		if manifest.Name != "" {
			report.Name = manifest.Name
		}
		report.Version = manifest.Version
		deps := manifest.DependencySet()
		report.Framework = ClassifyFramework(deps)
		report.HasTypeScript = hasTypeScript(root, deps)
	} else {
		report.HasTypeScript = fileExists(filepath.Join(root, "tsconfig.json"))
	}

	detected := detectConvention(root)
	if detected.tool != ToolNone {
		report.Monorepo.IsMonorepo = true
		report.Monorepo.Tool = detected.tool
		if len(detected.patterns) > 0 {
			report.Monorepo.Workspaces = detected.patterns
		}
		var subs []SubProject
		if detected.tool == ToolNx {
			subs = resolveNxSubProjects(root, detected.patterns)
		} else {
			subs = resolveSubProjects(root, detected.patterns)
		}
		if subs != nil {
			report.Monorepo.SubProjects = subs
		}
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "inspected project",
			"root", root,
			"tool", report.Monorepo.Tool,
			"package_manager", report.Monorepo.PackageManager,
			"sub_projects", len(report.Monorepo.SubProjects),
		)
	}

	return report
}

// ProjectName returns the root project's display name: the manifest name when
// readable, otherwise the directory's base name.
func (s *Service) ProjectName(ctx context.Context, root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if manifest, ok := readManifest(filepath.Join(root, "package.json")); ok && manifest.Name != "" {
		return manifest.Name
	}
	return filepath.Base(root)
}
