package workspace

import (
	"encoding/json"
	"os"
)

// PackageManifest is the parsed shape of a package.json. Only the fields the
// detection engine consults are decoded.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      WorkspacesField   `json:"workspaces"`
}

// WorkspacesField accepts both manifest shapes for the workspaces key: a plain
// array of patterns, or an object with a "packages" array.
type WorkspacesField struct {
	Patterns []string
	Declared bool
}

func (w *WorkspacesField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var patterns []string
	if err := json.Unmarshal(data, &patterns); err == nil {
		w.Patterns = patterns
		w.Declared = true
		return nil
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		w.Patterns = obj.Packages
		w.Declared = true
		return nil
	}
	// Unrecognized shape counts as "not declared" rather than a parse failure.
	return nil
}

func (w WorkspacesField) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Patterns)
}

// DependencySet merges dependencies then devDependencies into one name set.
// Later writes win, so a devDependencies entry shadows a dependencies entry of
// the same name.
func (m *PackageManifest) DependencySet() map[string]string {
	deps := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies))
	for name, ver := range m.Dependencies {
		deps[name] = ver
	}
	for name, ver := range m.DevDependencies {
		deps[name] = ver
	}
	return deps
}

// fileExists reports whether path names an existing file or directory. An
// inaccessible path classifies as not found.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readJSONFile decodes the JSON file at path into v. Missing files and
// malformed JSON are both soft failures: the return is false and v is left for
// the caller to default.
func readJSONFile(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// readManifest reads a package.json; ok is false when the file is missing or
// unparseable.
func readManifest(path string) (*PackageManifest, bool) {
	var manifest PackageManifest
	if !readJSONFile(path, &manifest) {
		return nil, false
	}
	return &manifest, true
}
