package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearRootEnv(t *testing.T) {
	t.Helper()
	for _, key := range rootEnvVars {
		t.Setenv(key, "")
	}
}

func TestResolveRoot_EnvVarWins(t *testing.T) {
	clearRootEnv(t)
	root := t.TempDir()
	t.Setenv("PROJECT_ROOT", root)

	require.Equal(t, root, ResolveRoot())
}

func TestResolveRoot_EnvOrder(t *testing.T) {
	clearRootEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	t.Setenv("CURSOR_PROJECT_PATH", first)
	t.Setenv("WORKSPACE_FOLDER", second)

	require.Equal(t, first, ResolveRoot())
}

func TestResolveRoot_SkipsMissingEnvPath(t *testing.T) {
	clearRootEnv(t)
	root := t.TempDir()
	t.Setenv("CURSOR_PROJECT_PATH", filepath.Join(root, "does-not-exist"))
	t.Setenv("VSCODE_CWD", root)

	require.Equal(t, root, ResolveRoot())
}

func TestResolveRoot_WalksUpToManifest(t *testing.T) {
	clearRootEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"up"}`)
	nested := filepath.Join(root, "src", "components")
	writeFile(t, filepath.Join(nested, "keep"), "")
	t.Chdir(nested)

	resolved := ResolveRoot()
	// TempDir may sit behind a symlink; compare the evaluated paths.
	require.Equal(t, mustEval(t, root), mustEval(t, resolved))
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
