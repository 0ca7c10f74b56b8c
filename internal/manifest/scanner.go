package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ManifestFileName is the per-component manifest file.
const ManifestFileName = "manifest.json"

// Component is one scanned corpus entry.
type Component struct {
	Dir      string    // absolute or root-relative path to the component directory
	TypeDir  string    // canonical type directory it was found under
	Manifest *Manifest // nil when the manifest failed to parse
	ParseErr error     // non-nil when manifest.json exists but is malformed
}

// Name returns the manifest name, falling back to the directory name when
// the manifest could not be parsed.
func (c *Component) Name() string {
	if c.Manifest != nil && c.Manifest.Name != "" {
		return c.Manifest.Name
	}
	return filepath.Base(c.Dir)
}

// ScanResult holds scanned components plus non-fatal skip warnings.
type ScanResult struct {
	Components []*Component
	Warnings   []string
}

// Scan enumerates every child directory of the canonical type directories
// under root and parses each manifest.json it finds. Directories without a
// manifest are skipped with a warning. A manifest that exists but fails to
// parse yields a Component with ParseErr set; the caller decides whether
// that is fatal for the component. Only an unreadable root is an error.
func Scan(root string) (*ScanResult, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("reading components directory %s: %w", root, err)
	}

	result := &ScanResult{}

	for _, typeDir := range TypeDirs {
		dir := filepath.Join(root, typeDir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // type directory absent — nothing of that type
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			componentDir := filepath.Join(dir, entry.Name())
			manifestPath := filepath.Join(componentDir, ManifestFileName)

			if _, err := os.Stat(manifestPath); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("skipping %s: no %s", componentDir, ManifestFileName))
				continue
			}

			c := &Component{Dir: componentDir, TypeDir: typeDir}
			m, err := Parse(manifestPath)
			if err != nil {
				c.ParseErr = err
			} else {
				c.Manifest = m
			}
			result.Components = append(result.Components, c)
		}
	}

	return result, nil
}

// Parse reads and unmarshals a manifest file. Unknown fields are tolerated.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// SortByName orders components lexicographically by name, for presentation.
func SortByName(components []*Component) {
	sort.Slice(components, func(i, j int) bool {
		return components[i].Name() < components[j].Name()
	})
}
