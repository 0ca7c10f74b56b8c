package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// IndexFileName is the aggregate catalog written at the output root.
const IndexFileName = "registry.json"

// IndexEntry is the reduced, content-free projection of a registry item,
// plus the full version list reconstructed from on-disk snapshots.
type IndexEntry struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Description          string   `json:"description"`
	Version              string   `json:"version"`
	Files                []string `json:"files"`
	RegistryDependencies []string `json:"registryDependencies,omitempty"`
	Categories           []string `json:"categories,omitempty"`
	Versions             []string `json:"versions"`
}

// NewIndexEntry projects an item down to its index record. File content is
// dropped; only installed paths survive.
func NewIndexEntry(item *Item, versions []string) IndexEntry {
	entry := IndexEntry{
		Name:                 item.Name,
		Type:                 item.Type,
		Description:          item.Description,
		Version:              item.Version,
		RegistryDependencies: item.RegistryDependencies,
		Categories:           item.Categories,
		Versions:             versions,
	}
	for _, f := range item.Files {
		entry.Files = append(entry.Files, f.Path)
	}
	if entry.Versions == nil {
		entry.Versions = []string{}
	}
	return entry
}

// WriteIndex writes the full registry index. The index is rebuilt wholesale
// on every run; there is no incremental merge.
func WriteIndex(outDir string, entries []IndexEntry) error {
	if entries == nil {
		entries = []IndexEntry{}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(outDir, IndexFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing index %s: %w", path, err)
	}
	return nil
}
