package stage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/kitn-dev/kitn-registry/internal/registry"
)

// Mirror rebuilds stagingDir as a symlink mirror of the installed layout:
// every declared file of every component appears at its installed path,
// linked back to the authored file. Components with missing or malformed
// manifests are skipped. Returns the number of files staged.
func Mirror(components []*manifest.Component, stagingDir string) (int, error) {
	if err := os.RemoveAll(stagingDir); err != nil {
		return 0, fmt.Errorf("clearing staging directory %s: %w", stagingDir, err)
	}

	staged := 0
	for _, c := range components {
		if c.Manifest == nil {
			continue
		}
		typeDir, ok := manifest.TypeDir(c.Manifest.Type)
		if !ok {
			typeDir = c.TypeDir
		}

		for _, rel := range c.Manifest.Files {
			target, err := filepath.Abs(filepath.Join(c.Dir, filepath.FromSlash(rel)))
			if err != nil {
				return staged, fmt.Errorf("resolving %s: %w", rel, err)
			}
			if _, err := os.Stat(target); err != nil {
				continue // declared but missing; build reports this, staging just skips
			}

			link := filepath.Join(stagingDir, filepath.FromSlash(registry.InstalledPath(typeDir, rel)))
			if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
				return staged, fmt.Errorf("creating staging directory for %s: %w", link, err)
			}
			if err := createLink(target, link); err != nil {
				return staged, fmt.Errorf("staging %s: %w", link, err)
			}
			staged++
		}
	}

	return staged, nil
}
