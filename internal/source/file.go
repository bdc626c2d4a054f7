package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"aliasgen/internal/diagnostic"
	"aliasgen/internal/directive"
)

// File is a parsed Go source file.
type File struct {
	// Path is the file path as given to the parser.
	Path string
	// Fset holds the positions of the file.
	Fset *token.FileSet
	// Syntax is the decorated syntax tree.
	Syntax *dst.File

	dec *decorator.Decorator
}

// Site is a declaration annotated with an alias directive.
type Site struct {
	// Index is the position of Decl in File.Syntax.Decls.
	Index int
	// Decl is the annotated declaration.
	Decl dst.Decl
	// Directive is the directive found in the doc comment of Decl.
	Directive *directive.Directive
}

// ParseFile parses src, or the file at path when src is nil.
func ParseFile(fset *token.FileSet, path string, src any) (*File, error) {
	dec := decorator.NewDecorator(fset)

	f, err := dec.ParseFile(path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &File{
		Path:   path,
		Fset:   fset,
		Syntax: f,
		dec:    dec,
	}, nil
}

// PackageName returns the name in the package clause.
func (f *File) PackageName() string {
	return f.Syntax.Name.Name
}

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." header.
func (f *File) Generated() bool {
	af, ok := f.dec.Ast.Nodes[f.Syntax].(*ast.File)
	return ok && ast.IsGenerated(af)
}

// Span returns the source span of a node parsed from this file. Nodes created
// after parsing, such as clones, have no span.
func (f *File) Span(n dst.Node) diagnostic.Span {
	an, ok := f.dec.Ast.Nodes[n]
	if !ok || an == nil {
		return diagnostic.Span{}
	}

	return diagnostic.Span{
		Start: f.Fset.Position(an.Pos()),
		End:   f.Fset.Position(an.End()),
	}
}

// Sites returns the declarations annotated with the named directive, in file
// order. Directives that cannot be located cleanly are reported in the
// returned diagnostics and produce no site.
func (f *File) Sites(name string) ([]Site, diagnostic.Diagnostics) {
	var (
		sites []Site
		diags diagnostic.Diagnostics
	)

	for i, decl := range f.Syntax.Decls {
		doc := f.docComments(decl)
		if len(doc) == 0 {
			continue
		}

		dir, err := directive.Find(name, doc)
		if err != nil {
			diags.AddError(err)
			continue
		}

		if dir == nil {
			continue
		}

		sites = append(sites, Site{Index: i, Decl: decl, Directive: dir})
	}

	return sites, diags
}

// Imports returns the import declarations of the file.
func (f *File) Imports() []*dst.GenDecl {
	var imports []*dst.GenDecl

	for _, decl := range f.Syntax.Decls {
		if gd, ok := decl.(*dst.GenDecl); ok && gd.Tok == token.IMPORT {
			imports = append(imports, gd)
		}
	}

	return imports
}

// docComments returns the doc comment lines of decl with their positions.
func (f *File) docComments(decl dst.Decl) []directive.Comment {
	var doc *ast.CommentGroup

	switch d := f.dec.Ast.Nodes[decl].(type) {
	case *ast.FuncDecl:
		doc = d.Doc
	case *ast.GenDecl:
		doc = d.Doc
	}

	if doc == nil {
		return nil
	}

	comments := make([]directive.Comment, len(doc.List))
	for i, c := range doc.List {
		comments[i] = directive.Comment{
			Text: c.Text,
			Pos:  f.Fset.Position(c.Slash),
		}
	}

	return comments
}
