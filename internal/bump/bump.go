package bump

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/semver/v3"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/kitn-dev/kitn-registry/internal/registry"
)

// Kinds are the supported bump kinds, in prompt order.
var Kinds = []string{"patch", "minor", "major"}

// Next computes the bumped version for the given kind. An empty current
// version bumps from the default "1.0.0".
func Next(current, kind string) (string, error) {
	if current == "" {
		current = registry.DefaultVersion
	}
	v, err := semver.NewVersion(current)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", current, err)
	}

	var next semver.Version
	switch kind {
	case "patch":
		next = v.IncPatch()
	case "minor":
		next = v.IncMinor()
	case "major":
		next = v.IncMajor()
	default:
		return "", fmt.Errorf("unknown bump kind %q", kind)
	}
	return next.String(), nil
}

// Apply rewrites the component's manifest.json with the new version and a
// prepended changelog entry. The manifest is edited as a raw document so
// fields this tool does not model survive the rewrite.
func Apply(c *manifest.Component, version, kind, note string, now time.Time) error {
	path := filepath.Join(c.Dir, manifest.ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	raw["version"] = version

	entry := map[string]interface{}{
		"version": version,
		"date":    now.Format("2006-01-02"),
		"type":    kind,
		"note":    note,
	}
	var changelog []interface{}
	if existing, ok := raw["changelog"].([]interface{}); ok {
		changelog = existing
	}
	raw["changelog"] = append([]interface{}{entry}, changelog...)

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Run drives the interactive flow over the scanned corpus: component
// selection (sorted by name), bump kind, changelog note.
func Run(root string, w io.Writer) error {
	scan, err := manifest.Scan(root)
	if err != nil {
		return err
	}

	var candidates []*manifest.Component
	for _, c := range scan.Components {
		if c.Manifest != nil {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no components found under %s", root)
	}
	manifest.SortByName(candidates)

	options := make([]string, len(candidates))
	byOption := make(map[string]*manifest.Component, len(candidates))
	for i, c := range candidates {
		version := c.Manifest.Version
		if version == "" {
			version = registry.DefaultVersion
		}
		options[i] = fmt.Sprintf("%s (%s, %s)", c.Name(), c.Manifest.Type, version)
		byOption[options[i]] = c
	}

	var selected string
	if err := survey.AskOne(&survey.Select{
		Message: "Component to bump:",
		Options: options,
	}, &selected); err != nil {
		return err
	}
	c := byOption[selected]

	var kind string
	if err := survey.AskOne(&survey.Select{
		Message: "Bump kind:",
		Options: Kinds,
		Default: "patch",
	}, &kind); err != nil {
		return err
	}

	var note string
	if err := survey.AskOne(&survey.Input{
		Message: "Changelog note:",
	}, &note, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	next, err := Next(c.Manifest.Version, kind)
	if err != nil {
		return err
	}
	if err := Apply(c, next, kind, note, time.Now()); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ %s: %s → %s\n", c.Name(), orDefault(c.Manifest.Version), next)
	return nil
}

func orDefault(version string) string {
	if version == "" {
		return registry.DefaultVersion
	}
	return version
}
