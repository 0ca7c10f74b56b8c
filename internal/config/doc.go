// Package config resolves the corpus root, output, and staging directories
// from flags, environment variables, and an optional kitn-registry.yaml in
// the working directory. Paths are read once per command invocation and
// passed explicitly into operations; nothing here holds mutable state.
package config
