package expand

import (
	"strings"

	"github.com/dave/dst"

	"aliasgen/internal/directive"
)

const deprecatedPrefix = "Deprecated: "

// Shape returns the marker shape selected by the metadata present in dep.
func Shape(dep *directive.Deprecation) MarkerShape {
	switch {
	case dep.Since != nil && dep.Note != nil:
		return ShapeSinceNote
	case dep.Since != nil:
		return ShapeSince
	case dep.Note != nil:
		return ShapeNote
	default:
		return ShapeBare
	}
}

// MarkerText returns the deprecation paragraph for dep, without comment markers.
func MarkerText(dep *directive.Deprecation) string {
	switch Shape(dep) {
	case ShapeSinceNote:
		return deprecatedPrefix + *dep.Note + " (since " + *dep.Since + ")"
	case ShapeSince:
		return deprecatedPrefix + "since " + *dep.Since + "."
	case ShapeNote:
		return deprecatedPrefix + *dep.Note
	default:
		return deprecatedPrefix + "this alias is deprecated."
	}
}

// MarkerLines returns the deprecation paragraph as "//" comment lines.
func MarkerLines(dep *directive.Deprecation) []string {
	text := strings.Split(MarkerText(dep), "\n")

	lines := make([]string, len(text))
	for i, line := range text {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			lines[i] = "//"
			continue
		}

		lines[i] = "// " + line
	}

	return lines
}

// Annotate appends the deprecation marker for dep to the doc comment of decl.
// A nil dep leaves decl untouched. Existing markers are kept as they are.
func Annotate(decl dst.Decl, dep *directive.Deprecation) {
	if dep == nil {
		return
	}

	decs := nodeDecs(decl)
	if decs == nil {
		return
	}

	if len(decs.Start) > 0 {
		decs.Start.Append("//")
	}

	decs.Start.Append(MarkerLines(dep)...)
}
