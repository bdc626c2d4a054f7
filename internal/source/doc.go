// Package source loads Go files and finds declarations annotated with an
// alias directive.
//
// Package patterns are resolved with golang.org/x/tools/go/packages. Each file
// is parsed with github.com/dave/dst/decorator so comments stay attached to
// the declarations they document, while the decorator's node map keeps the
// original source position of every node for diagnostics.
//
// Key types:
//   - File: a parsed source file that also serves as an expand.Locator
//   - Site: one annotated declaration and its directive
package source
