package workspace

// frameworkRules maps dependency names to framework labels. Order is the
// priority: the first dependency present in the set wins, so a Next.js app
// that also depends on react reports Next.js.
var frameworkRules = []struct {
	dependency string
	framework  Framework
}{
	{"next", FrameworkNext},
	{"nuxt", FrameworkNuxt},
	{"gatsby", FrameworkGatsby},
	{"react", FrameworkReact},
	{"vue", FrameworkVue},
	{"@angular/core", FrameworkAngular},
	{"svelte", FrameworkSvelte},
	{"express", FrameworkExpress},
	{"fastify", FrameworkFastify},
	{"@nestjs/core", FrameworkNestJS},
	{"solid", FrameworkSolid},
	{"astro", FrameworkAstro},
}

// ClassifyFramework returns the single best-match framework label for a
// dependency-name set.
func ClassifyFramework(deps map[string]string) Framework {
	for _, rule := range frameworkRules {
		if _, ok := deps[rule.dependency]; ok {
			return rule.framework
		}
	}
	return FrameworkUnknown
}
