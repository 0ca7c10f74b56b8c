package imports

import (
	"path"
	"regexp"
	"strings"
)

// aliasScope is the virtual package scope components use for cross-type
// imports. "@kitn/tools/echo.js" means "the tools area, file echo".
const aliasScope = "@kitn/"

// sourceExtensions are the file types scanned for imports. Markdown (skill
// bodies) and JSON are never scanned.
var sourceExtensions = []string{".ts", ".tsx"}

// The import grammar in scope is small enough for pattern matching: either
// an import/export with a `from` clause, or a bare side-effect import.
var (
	fromRe       = regexp.MustCompile(`(?m)\bfrom\s+['"]([^'"]+)['"]`)
	bareImportRe = regexp.MustCompile(`(?m)\bimport\s+['"]([^'"]+)['"]`)
)

// refKind classifies an extracted module specifier.
type refKind int

const (
	refAlias    refKind = iota // "@kitn/..." — resolved against the installed root
	refRelative                // "./x", "../y" — resolved against the file's installed dir
	refExternal                // bare package name — out of scope, ignored
)

// reference is one import or export specifier found in a source file.
type reference struct {
	specifier string
	kind      refKind
}

// isSourceFile reports whether a declared file should be scanned for imports.
func isSourceFile(installed string) bool {
	ext := path.Ext(installed)
	for _, e := range sourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// extractRefs pattern-matches all import/export specifiers in source text.
func extractRefs(source string) []reference {
	var refs []reference
	for _, re := range []*regexp.Regexp{fromRe, bareImportRe} {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			refs = append(refs, classify(m[1]))
		}
	}
	return refs
}

func classify(specifier string) reference {
	switch {
	case strings.HasPrefix(specifier, aliasScope):
		return reference{specifier: specifier, kind: refAlias}
	case strings.HasPrefix(specifier, "."):
		return reference{specifier: specifier, kind: refRelative}
	default:
		return reference{specifier: specifier, kind: refExternal}
	}
}

// normalizeExt maps a runtime-module extension back to the authoring
// extension: compiled references say ".js" but the registered file is ".ts".
// Extension-less specifiers are left alone — resolution is exact-match only,
// with no implicit extension probing.
func normalizeExt(p string) string {
	if strings.HasSuffix(p, ".js") {
		return strings.TrimSuffix(p, ".js") + ".ts"
	}
	return p
}

// resolveAlias maps an alias specifier to its installed path:
// "@kitn/tools/echo.js" -> "tools/echo.ts".
func resolveAlias(specifier string) string {
	sub := strings.TrimPrefix(specifier, aliasScope)
	return normalizeExt(path.Clean(sub))
}

// resolveRelative joins a relative specifier onto the referencing file's
// installed directory, producing a path anchored at the installed root:
// file "tools/x.ts" + "../agents/y.js" -> "agents/y.ts".
func resolveRelative(fromInstalled, specifier string) string {
	return normalizeExt(path.Join(path.Dir(fromInstalled), specifier))
}
