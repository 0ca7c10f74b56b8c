package imports

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/kitn-dev/kitn-registry/internal/manifest"
)

// Validate checks every source file of every component against the installed
// layout. The layout map is fully populated before any reference is
// resolved, since any file may reference any other component's files.
func Validate(components []*manifest.Component) *Report {
	l := buildLayout(components)
	rep := &Report{ComponentsChecked: len(l.components)}

	// Deterministic order for reporting.
	installed := make([]string, 0, len(l.files))
	for p := range l.files {
		installed = append(installed, p)
	}
	sort.Strings(installed)

	for _, p := range installed {
		f := l.files[p]
		if !isSourceFile(p) || f.source == "" {
			continue
		}
		rep.FilesChecked++
		checkFile(l, f, rep)
	}

	checkDependencies(l, rep)

	return rep
}

// checkFile extracts and resolves every alias and relative reference in one
// source file.
func checkFile(l *layout, f *layoutFile, rep *Report) {
	for _, ref := range extractRefs(f.source) {
		switch ref.kind {
		case refAlias:
			rep.ImportsChecked++
			resolved := resolveAlias(ref.specifier)
			if !l.has(resolved) {
				rep.add(Finding{
					Kind:      KindUnresolved,
					Component: f.component,
					File:      f.installed,
					Specifier: ref.specifier,
					Message:   suggest(l, f.component, resolved),
				})
			}

		case refRelative:
			rep.ImportsChecked++
			resolved := resolveRelative(f.installed, ref.specifier)
			resolvedDir := path.Dir(resolved)
			fromDir := path.Dir(f.installed)

			// A relative import that lands in another type directory works
			// in the source layout but not after relocation, because files
			// of different types land in different top-level directories.
			// Flagged even when the target exists; the alias form is the
			// only sanctioned way across type boundaries.
			if resolvedDir != fromDir && manifest.IsTypeDir(path.Base(resolvedDir)) {
				rep.add(Finding{
					Kind:      KindCrossType,
					Component: f.component,
					File:      f.installed,
					Specifier: ref.specifier,
					Message:   fmt.Sprintf("use %s%s instead of a relative path", aliasScope, resolved),
				})
				continue
			}

			if !l.has(resolved) {
				rep.add(Finding{
					Kind:      KindUnresolved,
					Component: f.component,
					File:      f.installed,
					Specifier: ref.specifier,
					Message:   suggest(l, f.component, resolved),
				})
			}
		}
	}
}

// suggest searches all known installed paths for one whose filename matches
// the unresolved target and names its owner. When that owner is missing from
// the erroring component's registryDependencies, the hint says so. Filename
// collisions across components can surface false positives; the suggestion
// is diagnostic only and never blocking.
func suggest(l *layout, fromComponent, resolved string) string {
	base := path.Base(resolved)
	var hints []string

	candidates := make([]string, 0, len(l.files))
	for p := range l.files {
		candidates = append(candidates, p)
	}
	sort.Strings(candidates)

	for _, p := range candidates {
		if path.Base(p) != base {
			continue
		}
		owner, _ := l.owner(p)
		hint := fmt.Sprintf("did you mean %s (from component %q)?", p, owner)
		if owner != fromComponent && !dependsOn(l, fromComponent, owner) {
			hint += fmt.Sprintf(" %q is not in registryDependencies", owner)
		}
		hints = append(hints, hint)
	}

	if len(hints) == 0 {
		return "no installed file matches"
	}
	return strings.Join(hints, "; ")
}

func dependsOn(l *layout, from, on string) bool {
	c, ok := l.components[from]
	if !ok || c.Manifest == nil {
		return false
	}
	for _, dep := range c.Manifest.RegistryDependencies {
		if dep == on {
			return true
		}
	}
	return false
}

// checkDependencies cross-checks declared registryDependencies against the
// set of known component names.
func checkDependencies(l *layout, rep *Report) {
	names := make([]string, 0, len(l.components))
	for name := range l.components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := l.components[name]
		for _, dep := range c.Manifest.RegistryDependencies {
			if _, ok := l.components[dep]; !ok {
				rep.add(Finding{
					Kind:      KindDanglingDependency,
					Component: name,
					Specifier: dep,
					Message:   "no component with this name exists in the corpus",
				})
			}
		}
	}
}
