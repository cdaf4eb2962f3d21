package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPattern expands a workspace declaration into concrete directory paths
// relative to root.
//
// Only the single trailing wildcard segment form ("packages/*") is supported.
// A pattern without a wildcard passes through verbatim with no existence
// check. Any other wildcard shape (nested "**", mid-path "*") is out of scope
// and degrades to a literal path, which then typically resolves to nothing.
func expandPattern(root, pattern string) []string {
	if !strings.Contains(pattern, "*") {
		return []string{pattern}
	}

	dir, last := filepath.Split(filepath.ToSlash(pattern))
	if last != "*" || strings.Contains(dir, "*") {
		// Unsupported glob shape; treat as a literal path.
		return []string{pattern}
	}
	dir = strings.TrimSuffix(dir, "/")

	entries, err := os.ReadDir(filepath.Join(root, dir))
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			paths = append(paths, filepath.ToSlash(filepath.Join(dir, entry.Name())))
		}
	}
	return paths
}
