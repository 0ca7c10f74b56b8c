package manifest

// Manifest type constants for the type discriminator field.
const (
	TypeAgent   = "kitn:agent"
	TypeTool    = "kitn:tool"
	TypeSkill   = "kitn:skill"
	TypeStorage = "kitn:storage-provider"
)

// ValidTypes contains all valid manifest type values.
var ValidTypes = []string{
	TypeAgent,
	TypeTool,
	TypeSkill,
	TypeStorage,
}

// TypeDirs lists the canonical installed-layout directories, in scan order.
var TypeDirs = []string{"agents", "tools", "skills", "storage"}

// TypeDir maps a manifest type to its canonical directory name.
func TypeDir(manifestType string) (string, bool) {
	switch manifestType {
	case TypeAgent:
		return "agents", true
	case TypeTool:
		return "tools", true
	case TypeSkill:
		return "skills", true
	case TypeStorage:
		return "storage", true
	}
	return "", false
}

// IsTypeDir reports whether name is one of the canonical type directories.
func IsTypeDir(name string) bool {
	for _, d := range TypeDirs {
		if d == name {
			return true
		}
	}
	return false
}

// Manifest is the author-maintained description of one component.
// Unknown fields are tolerated on parse and preserved by the bump workflow.
type Manifest struct {
	Name                 string            `json:"name"`
	Type                 string            `json:"type"`
	Description          string            `json:"description"`
	Version              string            `json:"version,omitempty"`
	Files                []string          `json:"files"`
	Dependencies         []string          `json:"dependencies,omitempty"`
	DevDependencies      []string          `json:"devDependencies,omitempty"`
	RegistryDependencies []string          `json:"registryDependencies,omitempty"`
	EnvVars              map[string]string `json:"envVars,omitempty"`
	Categories           []string          `json:"categories,omitempty"`
	Changelog            []ChangelogEntry  `json:"changelog,omitempty"`
}

// ChangelogEntry is one released change, newest first in the manifest.
type ChangelogEntry struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Note    string `json:"note"`
}
