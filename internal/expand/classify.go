package expand

import (
	"fmt"
	"go/token"

	"github.com/dave/dst"

	"aliasgen/internal/diagnostic"
)

// Locator resolves the source span of a node in the declaration being expanded.
type Locator interface {
	Span(n dst.Node) diagnostic.Span
}

type noLocator struct{}

func (noLocator) Span(dst.Node) diagnostic.Span {
	return diagnostic.Span{}
}

// Target is a classified declaration.
type Target struct {
	Kind Kind
	Decl dst.Decl
}

// Classify determines the kind of decl. Unsupported declarations and methods
// without a named receiver type are reported as diagnostics located through loc.
func Classify(decl dst.Decl, loc Locator) (Target, error) {
	if loc == nil {
		loc = noLocator{}
	}

	switch d := decl.(type) {
	case *dst.FuncDecl:
		if d.Recv == nil {
			return Target{Kind: KindFunction, Decl: d}, nil
		}

		if err := checkReceiver(d, loc); err != nil {
			return Target{}, err
		}

		return Target{Kind: KindImplementation, Decl: d}, nil

	case *dst.GenDecl:
		kind, what := classifyGenDecl(d)
		if kind == 0 {
			return Target{}, unsupported(decl, loc, what)
		}

		return Target{Kind: kind, Decl: d}, nil

	default:
		return Target{}, unsupported(decl, loc, "malformed declaration")
	}
}

// classifyGenDecl returns the kind of d, or zero and a description of why it
// cannot be aliased.
func classifyGenDecl(d *dst.GenDecl) (Kind, string) {
	switch d.Tok {
	case token.TYPE:
		if len(d.Specs) != 1 {
			return 0, fmt.Sprintf("grouped type declaration with %d specs", len(d.Specs))
		}

		spec, ok := d.Specs[0].(*dst.TypeSpec)
		if !ok {
			return 0, "malformed type declaration"
		}

		if spec.Assign {
			return 0, "type alias " + spec.Name.Name
		}

		switch spec.Type.(type) {
		case *dst.StructType:
			return KindStructure, ""
		case *dst.InterfaceType:
			return KindContract, ""
		default:
			return 0, "type " + spec.Name.Name + " is neither a struct nor an interface"
		}

	case token.CONST:
		if len(d.Specs) != 1 {
			return 0, fmt.Sprintf("grouped const declaration with %d specs", len(d.Specs))
		}

		spec, ok := d.Specs[0].(*dst.ValueSpec)
		if !ok {
			return 0, "malformed const declaration"
		}

		if len(spec.Names) != 1 {
			return 0, fmt.Sprintf("const declaration with %d names", len(spec.Names))
		}

		return KindConstant, ""

	default:
		return 0, d.Tok.String() + " declaration"
	}
}

func unsupported(decl dst.Decl, loc Locator, what string) error {
	return diagnostic.Errorf(diagnostic.CodeUnsupportedDeclaration, loc.Span(decl),
		"unsupported declaration: %s", what).
		WithSuggestions("aliases apply to functions, methods, struct types, interface types and single constants")
}

func checkReceiver(d *dst.FuncDecl, loc Locator) error {
	if len(d.Recv.List) == 0 {
		return diagnostic.Errorf(diagnostic.CodeMalformedSelfType, loc.Span(d),
			"method %s has an empty receiver list", d.Name.Name)
	}

	recv := d.Recv.List[0].Type
	if _, ok := receiverName(recv); !ok {
		return diagnostic.Errorf(diagnostic.CodeMalformedSelfType, loc.Span(recv),
			"receiver type of method %s is not a named type", d.Name.Name)
	}

	return nil
}

// receiverName returns the leading identifier of a receiver type, looking
// through pointers, parentheses, type arguments and selectors.
func receiverName(expr dst.Expr) (*dst.Ident, bool) {
	switch e := expr.(type) {
	case *dst.Ident:
		return e, true
	case *dst.StarExpr:
		return receiverName(e.X)
	case *dst.ParenExpr:
		return receiverName(e.X)
	case *dst.IndexExpr:
		return receiverName(e.X)
	case *dst.IndexListExpr:
		return receiverName(e.X)
	case *dst.SelectorExpr:
		return receiverName(e.X)
	default:
		return nil, false
	}
}

// identifyingName returns the identifier that aliasing rewrites in a declaration
// already classified as kind.
func identifyingName(decl dst.Decl, kind Kind) *dst.Ident {
	switch kind {
	case KindFunction:
		return decl.(*dst.FuncDecl).Name
	case KindImplementation:
		id, _ := receiverName(decl.(*dst.FuncDecl).Recv.List[0].Type)
		return id
	case KindStructure, KindContract:
		return decl.(*dst.GenDecl).Specs[0].(*dst.TypeSpec).Name
	case KindConstant:
		return decl.(*dst.GenDecl).Specs[0].(*dst.ValueSpec).Names[0]
	default:
		return nil
	}
}

// Name returns the identifying name of the target.
func (t Target) Name() string {
	if id := identifyingName(t.Decl, t.Kind); id != nil {
		return id.Name
	}

	return ""
}

// nodeDecs returns the decorations holding the doc comment of decl.
func nodeDecs(decl dst.Decl) *dst.NodeDecs {
	switch d := decl.(type) {
	case *dst.FuncDecl:
		return &d.Decs.NodeDecs
	case *dst.GenDecl:
		return &d.Decs.NodeDecs
	default:
		return nil
	}
}
