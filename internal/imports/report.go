package imports

import (
	"fmt"
	"io"
)

// FindingKind is the error taxonomy of the validator.
type FindingKind int

const (
	// KindCrossType flags a relative import whose target lands in a
	// different type directory. These break after installation regardless
	// of whether the target exists, and must use the alias form instead.
	KindCrossType FindingKind = iota
	// KindUnresolved flags a reference that matches no installed path.
	KindUnresolved
	// KindDanglingDependency flags a registryDependencies entry naming a
	// component that does not exist in the corpus.
	KindDanglingDependency
)

func (k FindingKind) String() string {
	switch k {
	case KindCrossType:
		return "cross-type import"
	case KindUnresolved:
		return "unresolved reference"
	case KindDanglingDependency:
		return "dangling dependency"
	}
	return "unknown"
}

// Finding is one validation error with enough context to act on.
type Finding struct {
	Kind      FindingKind
	Component string // component the finding belongs to
	File      string // installed path of the referencing file; empty for dependency findings
	Specifier string // the offending import specifier or dependency name
	Message   string // details, including suggested fixes where derivable
}

// Report accumulates findings and summary counters for one validation run.
type Report struct {
	ComponentsChecked int
	FilesChecked      int
	ImportsChecked    int
	Findings          []Finding
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// HasErrors reports whether any finding was recorded.
func (r *Report) HasErrors() bool {
	return len(r.Findings) > 0
}

// Print writes every finding and the summary line to w.
func (r *Report) Print(w io.Writer) {
	for _, f := range r.Findings {
		if f.File != "" {
			fmt.Fprintf(w, "  ✗ [%s] %s: %s imports %q\n", f.Kind, f.Component, f.File, f.Specifier)
		} else {
			fmt.Fprintf(w, "  ✗ [%s] %s: %q\n", f.Kind, f.Component, f.Specifier)
		}
		if f.Message != "" {
			fmt.Fprintf(w, "      %s\n", f.Message)
		}
	}

	fmt.Fprintf(w, "Checked %d components, %d files, %d imports: ",
		r.ComponentsChecked, r.FilesChecked, r.ImportsChecked)
	if r.HasErrors() {
		fmt.Fprintf(w, "%d error(s)\n", len(r.Findings))
	} else {
		fmt.Fprintln(w, "ok")
	}
}
