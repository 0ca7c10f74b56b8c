// Package registry assembles component manifests into self-contained
// registry items and writes the published registry tree: a mutable "latest"
// JSON file per component, a write-once canonical snapshot per version, and
// an aggregate registry.json index. Items are derived artifacts — they are
// regenerated on every build and never hand-edited.
package registry
