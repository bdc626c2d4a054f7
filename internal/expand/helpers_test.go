package expand

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/require"

	"aliasgen/internal/diagnostic"
	"aliasgen/internal/directive"
)

// parseDecl parses src as the tail of a file in package p and returns its last
// declaration together with the alias directive found in its doc comment.
func parseDecl(t *testing.T, src string) (dst.Decl, *directive.Directive) {
	t.Helper()

	f, err := decorator.Parse("package p\n\n" + src)
	require.NoError(t, err)
	require.NotEmpty(t, f.Decls)

	decl := f.Decls[len(f.Decls)-1]

	var doc []directive.Comment
	for _, line := range nodeDecs(decl).Start {
		doc = append(doc, directive.Comment{Text: line})
	}

	dir, err := directive.Find(directive.DefaultName, doc)
	require.NoError(t, err)

	return decl, dir
}

// expandSource parses src, reads its directive and expands it.
func expandSource(t *testing.T, src string) Result {
	t.Helper()

	decl, dir := parseDecl(t, src)
	require.NotNil(t, dir, "source has no @alias directive")

	aliases, err := dir.Parse()
	require.NoError(t, err)

	res, err := Expand(Request{Decl: decl, Aliases: aliases, Directive: dir})
	require.NoError(t, err)

	return res
}

// render prints decls as a file of package p.
func render(t *testing.T, decls ...dst.Decl) string {
	t.Helper()

	f := &dst.File{Name: dst.NewIdent("p"), Decls: decls}

	var buf bytes.Buffer
	require.NoError(t, decorator.Fprint(&buf, f))

	return buf.String()
}

// reparse renders decls and parses them back with go/parser.
func reparse(t *testing.T, decls ...dst.Decl) *ast.File {
	t.Helper()

	src := render(t, decls...)

	f, err := parser.ParseFile(token.NewFileSet(), "out.go", src, parser.ParseComments)
	require.NoError(t, err, src)

	return f
}

// declName returns the name a reader would use for an ast declaration.
func declName(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Name.Name
	case *ast.GenDecl:
		switch s := d.Specs[0].(type) {
		case *ast.TypeSpec:
			return s.Name.Name
		case *ast.ValueSpec:
			return s.Names[0].Name
		}
	}

	return ""
}

func declDoc(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Doc.Text()
	case *ast.GenDecl:
		return d.Doc.Text()
	}

	return ""
}

type fixedLocator struct {
	line int
}

func (l fixedLocator) Span(dst.Node) diagnostic.Span {
	pos := token.Position{Filename: "x.go", Line: l.line, Column: 1}
	return diagnostic.Span{Start: pos, End: pos}
}
