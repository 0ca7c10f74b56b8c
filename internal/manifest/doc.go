// Package manifest defines the component manifest shape and the corpus
// scanner. A corpus is a directory with up to four type directories (agents,
// tools, skills, storage), each containing one subdirectory per component
// with a manifest.json inside. The scanner never aborts the run for a single
// bad component: missing manifests are warnings, malformed manifests are
// carried on the descriptor for the caller to treat as it sees fit.
package manifest
