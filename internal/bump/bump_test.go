package bump

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kitn-dev/kitn-registry/internal/manifest"
)

func TestNext(t *testing.T) {
	tests := []struct {
		current string
		kind    string
		want    string
	}{
		{"1.2.3", "patch", "1.2.4"},
		{"1.2.3", "minor", "1.3.0"},
		{"1.2.3", "major", "2.0.0"},
		{"", "patch", "1.0.1"}, // absent version bumps from the default
		{"9.0.0", "minor", "9.1.0"},
	}
	for _, tt := range tests {
		got, err := Next(tt.current, tt.kind)
		if err != nil {
			t.Errorf("Next(%q, %q) error: %v", tt.current, tt.kind, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Next(%q, %q) = %q, want %q", tt.current, tt.kind, got, tt.want)
		}
	}
}

func TestNext_BadInputs(t *testing.T) {
	if _, err := Next("not-a-version", "patch"); err == nil {
		t.Error("expected error for unparseable version")
	}
	if _, err := Next("1.0.0", "gigantic"); err == nil {
		t.Error("expected error for unknown bump kind")
	}
}

func TestApply_RewritesManifest(t *testing.T) {
	dir := t.TempDir()
	original := `{
  "name": "echo",
  "type": "kitn:tool",
  "description": "echoes",
  "version": "1.0.0",
  "files": ["echo.ts"],
  "homepage": "https://example.com",
  "changelog": [
    {"version": "1.0.0", "date": "2026-01-01", "type": "major", "note": "initial release"}
  ]
}`
	path := filepath.Join(dir, manifest.ManifestFileName)
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	c := &manifest.Component{Dir: dir, TypeDir: "tools", Manifest: &manifest.Manifest{Name: "echo", Version: "1.0.0"}}
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	if err := Apply(c, "1.1.0", "minor", "added streaming", now); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("rewritten manifest is not valid JSON: %v", err)
	}

	if raw["version"] != "1.1.0" {
		t.Errorf("version = %v, want 1.1.0", raw["version"])
	}

	// Fields the tool does not model survive the rewrite.
	if raw["homepage"] != "https://example.com" {
		t.Errorf("homepage = %v, want preserved", raw["homepage"])
	}

	changelog, ok := raw["changelog"].([]interface{})
	if !ok || len(changelog) != 2 {
		t.Fatalf("changelog = %v, want 2 entries", raw["changelog"])
	}
	first, ok := changelog[0].(map[string]interface{})
	if !ok {
		t.Fatalf("changelog[0] = %v", changelog[0])
	}
	if first["version"] != "1.1.0" || first["type"] != "minor" || first["note"] != "added streaming" {
		t.Errorf("prepended entry = %v", first)
	}
	if first["date"] != "2026-08-23" {
		t.Errorf("date = %v, want 2026-08-23", first["date"])
	}
}

func TestApply_CreatesChangelogWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.ManifestFileName)
	if err := os.WriteFile(path, []byte(`{"name": "echo", "type": "kitn:tool", "description": "echoes", "files": ["echo.ts"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	c := &manifest.Component{Dir: dir, TypeDir: "tools", Manifest: &manifest.Manifest{Name: "echo"}}
	if err := Apply(c, "1.0.1", "patch", "first recorded change", time.Now()); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	m, err := manifest.Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Version != "1.0.1" {
		t.Errorf("version = %q, want 1.0.1", m.Version)
	}
	if len(m.Changelog) != 1 || m.Changelog[0].Note != "first recorded change" {
		t.Errorf("changelog = %+v", m.Changelog)
	}
}
