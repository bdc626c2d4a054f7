// Package gen runs alias expansion over loaded files and renders the result.
//
// Two output modes are supported:
//   - companion: the clones of every annotated declaration in a file are
//     written to a generated file next to it, with unused imports pruned by
//     golang.org/x/tools/imports
//   - inplace: each annotated declaration in the source is replaced by its
//     original followed by its clones, formatted with go/format
//
// A file with any error diagnostic produces no output.
package gen
