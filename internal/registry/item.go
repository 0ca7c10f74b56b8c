package registry

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/kitn-dev/kitn-registry/internal/manifest"
)

// DefaultVersion is applied when a manifest omits its version.
const DefaultVersion = "1.0.0"

// ItemFile is one resolved source file inside a registry item. Path is the
// installed path (type-directory prefixed), not the component-local path.
type ItemFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Item is the published form of one component: the manifest fields plus the
// full content of every declared file, keyed by installed path.
type Item struct {
	Name                 string                    `json:"name"`
	Type                 string                    `json:"type"`
	Description          string                    `json:"description"`
	Version              string                    `json:"version"`
	Files                []ItemFile                `json:"files"`
	Dependencies         []string                  `json:"dependencies,omitempty"`
	DevDependencies      []string                  `json:"devDependencies,omitempty"`
	RegistryDependencies []string                  `json:"registryDependencies,omitempty"`
	EnvVars              map[string]string         `json:"envVars,omitempty"`
	Categories           []string                  `json:"categories,omitempty"`
	Changelog            []manifest.ChangelogEntry `json:"changelog,omitempty"`
}

// InstalledPath computes the path a component file occupies after
// installation: the type's canonical directory prefixed to the
// component-relative path.
func InstalledPath(typeDir, relPath string) string {
	return path.Join(typeDir, filepath.ToSlash(relPath))
}

// BuildItem reads every declared file of the component and assembles the
// registry item. It fails for the component if the manifest was malformed,
// if any declared file is missing, or if the assembled item does not pass
// schema validation.
func BuildItem(c *manifest.Component) (*Item, error) {
	if c.ParseErr != nil {
		return nil, c.ParseErr
	}
	m := c.Manifest

	typeDir, ok := manifest.TypeDir(m.Type)
	if !ok {
		return nil, fmt.Errorf("component %s: unknown type %q", c.Name(), m.Type)
	}

	item := &Item{
		Name:                 m.Name,
		Type:                 m.Type,
		Description:          m.Description,
		Version:              m.Version,
		Dependencies:         m.Dependencies,
		DevDependencies:      m.DevDependencies,
		RegistryDependencies: m.RegistryDependencies,
		EnvVars:              m.EnvVars,
		Categories:           m.Categories,
		Changelog:            m.Changelog,
	}
	if item.Version == "" {
		item.Version = DefaultVersion
	}

	for _, rel := range m.Files {
		src := filepath.Join(c.Dir, filepath.FromSlash(rel))
		content, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("component %s: declared file %s: %w", c.Name(), rel, err)
		}
		item.Files = append(item.Files, ItemFile{
			Path:    InstalledPath(typeDir, rel),
			Content: string(content),
			Type:    m.Type,
		})
	}

	result, err := ValidateItem(item)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", c.Name(), err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("component %s: invalid registry item: %s", c.Name(), result.Summary())
	}

	return item, nil
}
