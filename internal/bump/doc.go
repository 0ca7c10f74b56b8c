// Package bump implements the interactive version-bump workflow: pick a
// component, pick the bump kind, describe the change. The manifest is
// rewritten with the new version and a prepended changelog entry; fields the
// tool does not model are preserved as-is.
package bump
