package imports

import (
	"os"
	"path/filepath"

	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/kitn-dev/kitn-registry/internal/registry"
)

// layoutFile is one declared file placed at its installed path.
type layoutFile struct {
	component string // owning component name
	installed string // installed path (type-dir prefixed, slash-separated)
	source    string // raw file text; empty when unreadable
}

// layout is the ephemeral installed-layout map, rebuilt fresh per run.
type layout struct {
	files      map[string]*layoutFile         // installed path -> file
	components map[string]*manifest.Component // component name -> descriptor
}

// buildLayout derives the installed path of every declared file across the
// corpus. Components whose manifest is missing or malformed are skipped
// silently — validation works off whatever parses. Unreadable declared files
// still claim their installed path so references to them resolve; their own
// imports simply go unscanned.
func buildLayout(components []*manifest.Component) *layout {
	l := &layout{
		files:      make(map[string]*layoutFile),
		components: make(map[string]*manifest.Component),
	}

	for _, c := range components {
		if c.Manifest == nil {
			continue
		}
		typeDir, ok := manifest.TypeDir(c.Manifest.Type)
		if !ok {
			typeDir = c.TypeDir
		}

		l.components[c.Name()] = c

		for _, rel := range c.Manifest.Files {
			installed := registry.InstalledPath(typeDir, rel)
			f := &layoutFile{component: c.Name(), installed: installed}
			if data, err := os.ReadFile(filepath.Join(c.Dir, filepath.FromSlash(rel))); err == nil {
				f.source = string(data)
			}
			l.files[installed] = f
		}
	}

	return l
}

// has reports whether an installed path is claimed by any component.
func (l *layout) has(installed string) bool {
	_, ok := l.files[installed]
	return ok
}

// owner returns the component name owning an installed path.
func (l *layout) owner(installed string) (string, bool) {
	f, ok := l.files[installed]
	if !ok {
		return "", false
	}
	return f.component, true
}
