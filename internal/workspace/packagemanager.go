package workspace

import "path/filepath"

// lockfileOrder is the tie-break for inconsistent roots: a directory carrying
// both a yarn and an npm lockfile classifies as Yarn.
var lockfileOrder = []struct {
	file    string
	manager PackageManager
}{
	{"yarn.lock", PackageManagerYarn},
	{"pnpm-lock.yaml", PackageManagerPnpm},
	{"package-lock.json", PackageManagerNpm},
}

// DetectPackageManager classifies the package manager from lockfile presence.
func DetectPackageManager(root string) PackageManager {
	for _, candidate := range lockfileOrder {
		if fileExists(filepath.Join(root, candidate.file)) {
			return candidate.manager
		}
	}
	return PackageManagerUnknown
}
