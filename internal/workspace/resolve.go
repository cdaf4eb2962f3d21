package workspace

import "path/filepath"

// resolveSubProjects expands each declaration and summarizes every resulting
// directory that carries a readable manifest. Directories with a missing or
// unparseable manifest are skipped silently. Output order follows declaration
// order, then expansion order within each declaration.
func resolveSubProjects(root string, patterns []string) []SubProject {
	return resolve(root, patterns, manifestName)
}

// resolveNxSubProjects is the Nx variant: the project's declared name in
// project.json takes priority over the manifest name.
func resolveNxSubProjects(root string, patterns []string) []SubProject {
	return resolve(root, patterns, func(dir string, manifest *PackageManifest) string {
		var proj struct {
			Name string `json:"name"`
		}
		if readJSONFile(filepath.Join(dir, "project.json"), &proj) && proj.Name != "" {
			return proj.Name
		}
		return manifest.Name
	})
}

func manifestName(_ string, manifest *PackageManifest) string {
	return manifest.Name
}

func resolve(root string, patterns []string, nameOf func(dir string, manifest *PackageManifest) string) []SubProject {
	var subs []SubProject
	for _, pattern := range patterns {
		for _, rel := range expandPattern(root, pattern) {
			dir := filepath.Join(root, rel)
			manifest, ok := readManifest(filepath.Join(dir, "package.json"))
			if !ok {
				continue
			}
			name := nameOf(dir, manifest)
			if name == "" {
				name = filepath.Base(rel)
			}
			deps := manifest.DependencySet()
			subs = append(subs, SubProject{
				Name:          name,
				RelativePath:  filepath.ToSlash(rel),
				Framework:     ClassifyFramework(deps),
				HasTypeScript: hasTypeScript(dir, deps),
				Version:       manifest.Version,
			})
		}
	}
	return subs
}

// hasTypeScript reports typing support: a typescript dependency or a
// tsconfig.json in the directory, whichever is true first.
func hasTypeScript(dir string, deps map[string]string) bool {
	if _, ok := deps["typescript"]; ok {
		return true
	}
	return fileExists(filepath.Join(dir, "tsconfig.json"))
}
