package registry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeComponent(t *testing.T, root, typeDir, name, manifestJSON string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, typeDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifestJSON), 0644); err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuild_WritesLatestSnapshotAndIndex(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeComponent(t, root, "tools", "echo",
		`{"name": "echo", "type": "kitn:tool", "description": "echoes", "version": "1.1.0", "files": ["echo.ts"]}`,
		map[string]string{"echo.ts": "export const echo = (s: string) => s;\n"})

	result, err := Build(root, out, io.Discard)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(result.Items) != 1 || len(result.Failed) != 0 {
		t.Fatalf("items = %d, failed = %d; want 1, 0", len(result.Items), len(result.Failed))
	}

	for _, f := range []string{
		filepath.Join(out, "tools", "echo.json"),
		filepath.Join(out, "tools", "echo@1.1.0.json"),
		filepath.Join(out, IndexFileName),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected output file %s: %v", f, err)
		}
	}
}

func TestBuild_SnapshotIsNeverRewritten(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeComponent(t, root, "tools", "echo",
		`{"name": "echo", "type": "kitn:tool", "description": "echoes", "version": "1.0.0", "files": ["echo.ts"]}`,
		map[string]string{"echo.ts": "export const echo = 1;\n"})

	if _, err := Build(root, out, io.Discard); err != nil {
		t.Fatalf("first Build error: %v", err)
	}
	snap := filepath.Join(out, "tools", "echo@1.0.0.json")
	first, err := os.ReadFile(snap)
	if err != nil {
		t.Fatal(err)
	}

	// Change source content without bumping the version.
	echoPath := filepath.Join(root, "tools", "echo", "echo.ts")
	if err := os.WriteFile(echoPath, []byte("export const echo = 2;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Build(root, out, io.Discard); err != nil {
		t.Fatalf("second Build error: %v", err)
	}
	second, err := os.ReadFile(snap)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("version-stamped snapshot was rewritten without a version bump")
	}

	// The latest pointer does pick up the new content.
	latest, err := os.ReadFile(filepath.Join(out, "tools", "echo.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(latest), "echo = 2") {
		t.Error("latest pointer does not reflect updated content")
	}
}

func TestBuild_VersionListAccumulatesAcrossBumps(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()

	for _, version := range []string{"1.0.0", "2.0.0", "10.0.0"} {
		writeComponent(t, root, "tools", "echo",
			`{"name": "echo", "type": "kitn:tool", "description": "echoes", "version": "`+version+`", "files": ["echo.ts"]}`,
			map[string]string{"echo.ts": "export {};\n"})
		if _, err := Build(root, out, io.Discard); err != nil {
			t.Fatalf("Build at %s error: %v", version, err)
		}
	}

	result, err := Build(root, out, io.Discard)
	if err != nil {
		t.Fatalf("final Build error: %v", err)
	}
	got := result.Index[0].Versions
	want := []string{"10.0.0", "2.0.0", "1.0.0"}
	if len(got) != len(want) {
		t.Fatalf("versions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("versions = %v, want %v", got, want)
		}
	}
}

func TestBuild_IndexIsContentFree(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	marker := "UNIQUE_CONTENT_MARKER"
	writeComponent(t, root, "agents", "greeter",
		`{"name": "greeter", "type": "kitn:agent", "description": "greets", "files": ["greeter.ts"]}`,
		map[string]string{"greeter.ts": "// " + marker + "\nexport {};\n"})

	if _, err := Build(root, out, io.Discard); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, IndexFileName))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), marker) {
		t.Error("index contains file content")
	}

	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("index is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("index entries = %d, want 1", len(entries))
	}
	if entries[0].Files[0] != "agents/greeter.ts" {
		t.Errorf("index file path = %q, want agents/greeter.ts", entries[0].Files[0])
	}
}

func TestBuild_FailedComponentDoesNotAbortRun(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeComponent(t, root, "tools", "broken",
		`{"name": "broken", "type": "kitn:tool", "description": "bad", "files": ["missing.ts"]}`,
		nil)
	writeComponent(t, root, "tools", "echo",
		`{"name": "echo", "type": "kitn:tool", "description": "echoes", "files": ["echo.ts"]}`,
		map[string]string{"echo.ts": "export {};\n"})

	var log bytes.Buffer
	result, err := Build(root, out, &log)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Errorf("items = %d, want 1", len(result.Items))
	}
	if len(result.Failed) != 1 || result.Failed[0].Component != "broken" {
		t.Errorf("failed = %+v, want one entry for broken", result.Failed)
	}
	if !strings.Contains(log.String(), "missing.ts") {
		t.Errorf("log %q does not name the missing file", log.String())
	}
}

func TestBuild_MalformedManifestFailsOnlyThatComponent(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeComponent(t, root, "tools", "broken", `{not json`, nil)
	writeComponent(t, root, "tools", "echo",
		`{"name": "echo", "type": "kitn:tool", "description": "echoes", "files": ["echo.ts"]}`,
		map[string]string{"echo.ts": "export {};\n"})

	result, err := Build(root, out, io.Discard)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(result.Items) != 1 || len(result.Failed) != 1 {
		t.Errorf("items = %d, failed = %d; want 1, 1", len(result.Items), len(result.Failed))
	}
}
