package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSubProjects_SkipsDirsWithoutManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages", "a", "package.json"),
		`{"name":"pkg-a","dependencies":{"react":"^18"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "packages", "b"), 0o755))

	subs := resolveSubProjects(root, []string{"packages/*"})
	require.Equal(t, []SubProject{{
		Name:         "pkg-a",
		RelativePath: "packages/a",
		Framework:    FrameworkReact,
	}}, subs)
}

func TestResolveSubProjects_NameDefaultsToBaseName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages", "util", "package.json"), `{"version":"2.0.0"}`)

	subs := resolveSubProjects(root, []string{"packages/*"})
	require.Len(t, subs, 1)
	require.Equal(t, "util", subs[0].Name)
	require.Equal(t, "2.0.0", subs[0].Version)
}

func TestResolveSubProjects_DeclarationOrderIsPreserved(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "apps", "z", "package.json"), `{"name":"z"}`)
	writeFile(t, filepath.Join(root, "libs", "a", "package.json"), `{"name":"a"}`)

	subs := resolveSubProjects(root, []string{"apps/*", "libs/*"})
	require.Len(t, subs, 2)
	require.Equal(t, "z", subs[0].Name)
	require.Equal(t, "a", subs[1].Name)
}

func TestResolveSubProjects_TypeScriptFlag(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages", "dep", "package.json"),
		`{"name":"dep","devDependencies":{"typescript":"^5"}}`)
	writeFile(t, filepath.Join(root, "packages", "cfg", "package.json"), `{"name":"cfg"}`)
	writeFile(t, filepath.Join(root, "packages", "cfg", "tsconfig.json"), `{}`)
	writeFile(t, filepath.Join(root, "packages", "js", "package.json"), `{"name":"js"}`)

	subs := resolveSubProjects(root, []string{"packages/*"})
	require.Len(t, subs, 3)
	byName := map[string]SubProject{}
	for _, sub := range subs {
		byName[sub.Name] = sub
	}
	require.True(t, byName["dep"].HasTypeScript)
	require.True(t, byName["cfg"].HasTypeScript)
	require.False(t, byName["js"].HasTypeScript)
}

func TestResolveNxSubProjects_NamePriority(t *testing.T) {
	root := t.TempDir()
	// project.json name outranks the manifest name.
	writeFile(t, filepath.Join(root, "apps", "web", "project.json"), `{"name":"web-app"}`)
	writeFile(t, filepath.Join(root, "apps", "web", "package.json"), `{"name":"@acme/web"}`)
	// Manifest name is next.
	writeFile(t, filepath.Join(root, "apps", "api", "package.json"), `{"name":"@acme/api"}`)
	// Base name is the last resort.
	writeFile(t, filepath.Join(root, "apps", "docs", "package.json"), `{}`)

	subs := resolveNxSubProjects(root, []string{"apps/web", "apps/api", "apps/docs"})
	require.Len(t, subs, 3)
	require.Equal(t, "web-app", subs[0].Name)
	require.Equal(t, "@acme/api", subs[1].Name)
	require.Equal(t, "docs", subs[2].Name)
}
