// Package stage mirrors the installed layout as a symlink tree so external
// tooling (a type-checker, an editor) can see components arranged the way an
// installer would place them, without copying any file content. The staging
// tree is derived and disposable; it is rebuilt from scratch on every run.
package stage
