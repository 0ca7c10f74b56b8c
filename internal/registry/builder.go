package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gowebpki/jcs"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
)

// ComponentError records one component that failed to build.
type ComponentError struct {
	Component string
	Err       error
}

// BuildResult summarizes a full registry build.
type BuildResult struct {
	Items  []*Item
	Index  []IndexEntry
	Failed []ComponentError
}

// Build runs the full registry build: scan the corpus, assemble an item per
// component, write the latest pointer and (first time only) the version
// snapshot, reconstruct each component's version list from disk, and write
// the aggregate index. A component that fails to read or validate is logged
// and skipped; the rest of the corpus still builds.
func Build(root, outDir string, logw io.Writer) (*BuildResult, error) {
	scan, err := manifest.Scan(root)
	if err != nil {
		return nil, err
	}
	for _, w := range scan.Warnings {
		fmt.Fprintln(logw, "warning:", w)
	}

	result := &BuildResult{}

	for _, c := range scan.Components {
		item, err := BuildItem(c)
		if err != nil {
			fmt.Fprintf(logw, "error: %v\n", err)
			result.Failed = append(result.Failed, ComponentError{Component: c.Name(), Err: err})
			continue
		}

		typeDir, _ := manifest.TypeDir(item.Type)
		if err := WriteItem(outDir, typeDir, item); err != nil {
			fmt.Fprintf(logw, "error: %v\n", err)
			result.Failed = append(result.Failed, ComponentError{Component: c.Name(), Err: err})
			continue
		}

		versions, err := Versions(outDir, typeDir, item.Name)
		if err != nil {
			return nil, fmt.Errorf("scanning versions for %s: %w", item.Name, err)
		}

		result.Items = append(result.Items, item)
		result.Index = append(result.Index, NewIndexEntry(item, versions))
	}

	if err := WriteIndex(outDir, result.Index); err != nil {
		return nil, err
	}

	return result, nil
}

// WriteItem writes the mutable latest pointer and, if not already present,
// the immutable version-stamped snapshot. The snapshot is canonical JSON
// (RFC 8785) so its bytes are deterministic, and it is never rewritten once
// published — even if the component's sources change without a version bump.
func WriteItem(outDir, typeDir string, item *Item) error {
	dir := filepath.Join(outDir, typeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	latest, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling item %s: %w", item.Name, err)
	}
	latest = append(latest, '\n')
	if err := os.WriteFile(latestPath(outDir, typeDir, item.Name), latest, 0644); err != nil {
		return fmt.Errorf("writing latest item for %s: %w", item.Name, err)
	}

	if SnapshotExists(outDir, typeDir, item.Name, item.Version) {
		return nil
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshaling snapshot %s@%s: %w", item.Name, item.Version, err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return fmt.Errorf("canonicalizing snapshot %s@%s: %w", item.Name, item.Version, err)
	}
	snap := snapshotPath(outDir, typeDir, item.Name, item.Version)
	if err := os.WriteFile(snap, canonical, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", snap, err)
	}
	return nil
}
