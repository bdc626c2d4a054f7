package expand

import (
	"errors"
	"slices"

	"github.com/dave/dst"

	"aliasgen/internal/directive"
)

// ErrNoAliases is returned when Expand is called with an empty alias list.
var ErrNoAliases = errors.New("alias list is empty")

// Request describes one annotated declaration.
type Request struct {
	// Decl is the annotated declaration. It is only read.
	Decl dst.Decl
	// Aliases are the requested duplicates, in output order.
	Aliases directive.AliasList
	// Directive, when set, is removed from the doc comment of every output declaration.
	Directive *directive.Directive
	// Locator positions diagnostics. It may be nil.
	Locator Locator
}

// Result is the expansion of one declaration.
type Result struct {
	Kind Kind
	// Name is the identifying name of the original declaration.
	Name string
	// Decls holds the original declaration followed by one clone per alias.
	Decls []dst.Decl
}

// Original returns the original declaration.
func (r Result) Original() dst.Decl {
	return r.Decls[0]
}

// Clones returns the renamed duplicates in alias order.
func (r Result) Clones() []dst.Decl {
	return r.Decls[1:]
}

// Expand classifies req.Decl and returns it followed by one renamed clone per
// alias. Either every declaration is produced or an error is returned.
func Expand(req Request) (Result, error) {
	if len(req.Aliases) == 0 {
		return Result{}, ErrNoAliases
	}

	target, err := Classify(req.Decl, req.Locator)
	if err != nil {
		return Result{}, err
	}

	decls := make([]dst.Decl, 0, len(req.Aliases)+1)
	decls = append(decls, clean(req.Decl, req.Directive))

	for _, alias := range req.Aliases {
		decls = append(decls, duplicate(target, req.Directive, alias))
	}

	return Result{Kind: target.Kind, Name: target.Name(), Decls: decls}, nil
}

// duplicate clones the target, renames it and marks it deprecated when asked.
func duplicate(target Target, dir *directive.Directive, alias directive.AliasSpec) dst.Decl {
	clone := clean(target.Decl, dir)
	identifyingName(clone, target.Kind).Name = alias.Name

	decs := nodeDecs(clone)
	decs.Start.Replace(docComment(decs.Start)...)
	decs.Before = dst.EmptyLine

	Annotate(clone, alias.Deprecation)

	return clone
}

// clean returns a deep copy of decl without the directive comment lines.
func clean(decl dst.Decl, dir *directive.Directive) dst.Decl {
	clone, _ := dst.Clone(decl).(dst.Decl)
	if dir != nil {
		StripDirective(clone, dir)
	}

	return clone
}

// StripDirective removes the comment lines owned by dir from the doc comment of decl.
func StripDirective(decl dst.Decl, dir *directive.Directive) {
	decs := nodeDecs(decl)
	if decs == nil {
		return
	}

	start := decs.Start.All()

	at := dir.IndexIn(start)
	if at < 0 {
		return
	}

	kept := make([]string, 0, len(start)-len(dir.Comments))
	kept = append(kept, start[:at]...)
	kept = append(kept, start[at+len(dir.Comments):]...)

	// a directive between two paragraphs leaves two separators behind
	if at > 0 && at < len(kept) && isBlankDecoration(kept[at-1]) && isBlankDecoration(kept[at]) {
		kept = slices.Delete(kept, at, at+1)
	}

	// drop blank comment lines left dangling at the end of the doc; a blank
	// line separating an earlier comment group stays
	for len(kept) > 0 && kept[len(kept)-1] == "//" {
		kept = kept[:len(kept)-1]
	}

	decs.Start.Replace(kept...)
}

// docComment returns the lines of start that form the doc comment, dropping
// comments separated from the declaration by a blank line.
func docComment(start dst.Decorations) []string {
	lines := start.All()

	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == "\n" {
			return lines[i+1:]
		}
	}

	return lines
}

func isBlankDecoration(s string) bool {
	return s == "//" || s == "\n"
}
