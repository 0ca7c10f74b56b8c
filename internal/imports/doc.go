// Package imports statically cross-checks component source files against the
// installed layout. Components are authored grouped by component but are
// installed grouped by type, so a relative import that resolves in the source
// tree can dangle after installation. The validator rebuilds the installed
// layout in memory on every run, extracts import specifiers by pattern
// matching (no parser, no type-checker), resolves each against that layout,
// and reports cross-type relative imports, unresolved references, and
// registryDependencies entries that name no known component. It is purely
// diagnostic: nothing is ever written or auto-fixed.
package imports
