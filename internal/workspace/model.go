package workspace

// Tool identifies the workspace convention governing a repository root.
type Tool string

const (
	ToolNone           Tool = "None"
	ToolLerna          Tool = "Lerna"
	ToolYarnWorkspaces Tool = "Yarn Workspaces"
	ToolNpmWorkspaces  Tool = "npm Workspaces"
	ToolPnpmWorkspaces Tool = "pnpm Workspaces"
	ToolNx             Tool = "Nx"
	ToolRush           Tool = "Rush"
)

// PackageManager identifies the package manager inferred from lockfiles.
type PackageManager string

const (
	PackageManagerUnknown PackageManager = "Unknown"
	PackageManagerYarn    PackageManager = "Yarn"
	PackageManagerPnpm    PackageManager = "pnpm"
	PackageManagerNpm     PackageManager = "npm"
)

// Framework is the single best-match framework label for a dependency set.
type Framework string

const (
	FrameworkUnknown Framework = "Unknown"
	FrameworkNext    Framework = "Next.js"
	FrameworkNuxt    Framework = "Nuxt.js"
	FrameworkGatsby  Framework = "Gatsby"
	FrameworkReact   Framework = "React"
	FrameworkVue     Framework = "Vue.js"
	FrameworkAngular Framework = "Angular"
	FrameworkSvelte  Framework = "Svelte"
	FrameworkExpress Framework = "Express.js"
	FrameworkFastify Framework = "Fastify"
	FrameworkNestJS  Framework = "NestJS"
	FrameworkSolid   Framework = "Solid.js"
	FrameworkAstro   Framework = "Astro"
)

// SubProject is the summarized record for one discovered sub-project directory.
type SubProject struct {
	Name          string    `json:"name"`
	RelativePath  string    `json:"relative_path"`
	Framework     Framework `json:"framework"`
	HasTypeScript bool      `json:"has_typescript"`
	Version       string    `json:"version,omitempty"`
}

// MonorepoInfo aggregates the workspace topology of a repository root.
type MonorepoInfo struct {
	IsMonorepo     bool           `json:"is_monorepo"`
	Tool           Tool           `json:"tool"`
	PackageManager PackageManager `json:"package_manager"`
	Workspaces     []string       `json:"workspaces"`
	SubProjects    []SubProject   `json:"sub_projects"`
}

// ProjectReport is the top-level result of a single inspection. It is a pure
// function of the directory tree at the instant of inspection; nothing is
// cached or persisted between invocations.
type ProjectReport struct {
	Name           string       `json:"name"`
	Path           string       `json:"path"`
	HasPackageJSON bool         `json:"has_package_json"`
	Version        string       `json:"version,omitempty"`
	Framework      Framework    `json:"framework"`
	HasTypeScript  bool         `json:"has_typescript"`
	Monorepo       MonorepoInfo `json:"monorepo"`
}
