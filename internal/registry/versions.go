package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Versions scans outDir/typeDir for name@<version>.json snapshots and
// returns the version list sorted descending by semantic-version comparison.
// Plain lexicographic order would put "2.0.0" after "10.0.0"; semver
// comparison keeps "10.0.0" first.
func Versions(outDir, typeDir, name string) ([]string, error) {
	pattern := filepath.Join(outDir, typeDir, name+"@*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, m := range matches {
		base := strings.TrimSuffix(filepath.Base(m), ".json")
		at := strings.Index(base, "@")
		if at < 0 {
			continue
		}
		versions = append(versions, base[at+1:])
	}

	SortVersionsDesc(versions)
	return versions, nil
}

// SortVersionsDesc orders version strings newest first. Versions that do not
// parse as semver sort after all parseable ones, by reverse string order.
func SortVersionsDesc(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		vi, errI := semver.NewVersion(versions[i])
		vj, errJ := semver.NewVersion(versions[j])
		switch {
		case errI == nil && errJ == nil:
			return vi.GreaterThan(vj)
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return versions[i] > versions[j]
		}
	})
}

// SnapshotExists reports whether the write-once snapshot for a version is
// already on disk.
func SnapshotExists(outDir, typeDir, name, version string) bool {
	_, err := os.Stat(snapshotPath(outDir, typeDir, name, version))
	return err == nil
}

func snapshotPath(outDir, typeDir, name, version string) string {
	return filepath.Join(outDir, typeDir, name+"@"+version+".json")
}

func latestPath(outDir, typeDir, name string) string {
	return filepath.Join(outDir, typeDir, name+".json")
}
