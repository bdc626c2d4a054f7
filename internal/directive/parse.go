package directive

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"

	"aliasgen/internal/diagnostic"
	"aliasgen/internal/match"
)

// Locator maps a byte offset in the argument text to a source position.
type Locator func(offset int) token.Position

// Parse parses directive arguments, starting at the opening parenthesis:
//
//	(A, deprecated(B), deprecated(C, since = "0.1.0", note = "use A"),)
//
// Diagnostics are positioned through locate. A nil locate reports positions
// relative to src itself.
func Parse(src string, locate Locator) (AliasList, error) {
	if locate == nil {
		locate = textLocator(src)
	}

	p := newParser(src, locate)

	list := p.parseList()
	if p.err != nil {
		return nil, p.err
	}

	return list, nil
}

type parser struct {
	scanner scanner.Scanner
	file    *token.File
	locate  Locator
	err     *diagnostic.Diagnostic

	pos token.Pos
	tok token.Token
	lit string
}

func newParser(src string, locate Locator) *parser {
	p := &parser{locate: locate}

	fset := token.NewFileSet()
	p.file = fset.AddFile("", fset.Base(), len(src))
	p.scanner.Init(p.file, []byte(src), func(pos token.Position, msg string) {
		if p.err == nil {
			p.err = diagnostic.Errorf(diagnostic.CodeMalformedArguments,
				p.spanAt(pos.Offset, 1), "%s", msg)
		}
	}, 0)
	p.next()

	return p
}

// next advances to the next token, skipping automatically inserted semicolons.
func (p *parser) next() {
	for {
		p.pos, p.tok, p.lit = p.scanner.Scan()
		if p.tok == token.SEMICOLON && p.lit == "\n" {
			continue
		}

		return
	}
}

func (p *parser) failed() bool {
	return p.err != nil
}

// errorf records the first error. It returns the recorded diagnostic, or nil
// if an earlier error is kept.
func (p *parser) errorf(pos token.Pos, format string, args ...any) *diagnostic.Diagnostic {
	if p.err != nil {
		return nil
	}

	p.err = diagnostic.Errorf(diagnostic.CodeMalformedArguments,
		p.span(pos, p.width()), format, args...)

	return p.err
}

// suggest adds a spelling suggestion to d when word is close to a candidate.
func suggest(d *diagnostic.Diagnostic, word string, candidates ...string) {
	if d == nil {
		return
	}

	if s := match.Closest(word, candidates...); s != "" {
		d.WithSuggestions(fmt.Sprintf("did you mean %s?", s))
	}
}

func (p *parser) width() int {
	switch {
	case p.tok == token.EOF:
		return 0
	case p.lit != "":
		return len(p.lit)
	default:
		return len(p.tok.String())
	}
}

func (p *parser) span(pos token.Pos, n int) diagnostic.Span {
	return p.spanAt(p.file.Offset(pos), n)
}

func (p *parser) spanAt(offset, n int) diagnostic.Span {
	return diagnostic.Span{Start: p.locate(offset), End: p.locate(offset + n)}
}

// found describes the current token for error messages.
func (p *parser) found() string {
	switch p.tok {
	case token.EOF:
		return "end of directive"
	case token.IDENT:
		return "identifier " + p.lit
	case token.STRING, token.INT, token.FLOAT, token.CHAR, token.IMAG:
		return p.lit
	default:
		return fmt.Sprintf("'%s'", p.tok)
	}
}

func (p *parser) parseList() AliasList {
	if p.tok != token.LPAREN {
		p.errorf(p.pos, "expected '(' after directive name, found %s", p.found())
		return nil
	}

	p.next()

	var list AliasList

	for p.tok != token.RPAREN && !p.failed() {
		spec, ok := p.parseEntry()
		if !ok {
			return nil
		}

		list = append(list, spec)

		if p.tok == token.COMMA {
			p.next()
			continue
		}

		if p.tok != token.RPAREN {
			d := p.errorf(p.pos, "expected ',' or ')' after alias %s, found %s", spec.Name, p.found())
			if p.tok == token.LPAREN {
				suggest(d, spec.Name, keywordDeprecated)
			}

			return nil
		}
	}

	if p.failed() {
		return nil
	}

	if len(list) == 0 {
		p.errorf(p.pos, "expected at least one alias")
		return nil
	}

	p.next()

	if p.tok != token.EOF {
		p.errorf(p.pos, "unexpected %s after closing ')'", p.found())
		return nil
	}

	return list
}

func (p *parser) parseEntry() (AliasSpec, bool) {
	if p.tok != token.IDENT {
		p.errorf(p.pos, "expected alias name, found %s", p.found())
		return AliasSpec{}, false
	}

	name, pos := p.lit, p.pos
	p.next()

	if name != keywordDeprecated {
		return AliasSpec{Name: name, Span: p.span(pos, len(name))}, true
	}

	if p.tok != token.LPAREN {
		p.errorf(p.pos, "expected '(' after %s, found %s", keywordDeprecated, p.found())
		return AliasSpec{}, false
	}

	p.next()

	return p.parseDeprecated()
}

// parseDeprecated parses the body of deprecated(...) after the opening parenthesis.
func (p *parser) parseDeprecated() (AliasSpec, bool) {
	if p.tok != token.IDENT {
		p.errorf(p.pos, "expected alias name in %s(...), found %s", keywordDeprecated, p.found())
		return AliasSpec{}, false
	}

	spec := AliasSpec{
		Name:        p.lit,
		Span:        p.span(p.pos, len(p.lit)),
		Deprecation: &Deprecation{},
	}
	p.next()

	for !p.failed() {
		if p.tok == token.RPAREN {
			p.next()
			return spec, true
		}

		if p.tok != token.COMMA {
			p.errorf(p.pos, "expected ',' or ')' in %s(%s), found %s", keywordDeprecated, spec.Name, p.found())
			return AliasSpec{}, false
		}

		p.next()

		// tolerate a trailing comma
		if p.tok == token.RPAREN {
			continue
		}

		if !p.parseKeyValue(spec.Deprecation) {
			return AliasSpec{}, false
		}
	}

	return AliasSpec{}, false
}

// parseKeyValue parses key = "literal". A repeated key overwrites the earlier value.
func (p *parser) parseKeyValue(dep *Deprecation) bool {
	if p.tok != token.IDENT {
		p.errorf(p.pos, "expected %s or %s, found %s", keySince, keyNote, p.found())
		return false
	}

	key := p.lit
	if key != keySince && key != keyNote {
		d := p.errorf(p.pos, "unknown deprecation key %q, expected %s or %s", key, keySince, keyNote)
		suggest(d, key, keySince, keyNote)

		return false
	}

	p.next()

	if p.tok != token.ASSIGN {
		p.errorf(p.pos, "expected '=' after %s, found %s", key, p.found())
		return false
	}

	p.next()

	if p.tok != token.STRING {
		p.errorf(p.pos, "expected string literal for %s, found %s", key, p.found())
		return false
	}

	value, err := strconv.Unquote(p.lit)
	if err != nil {
		p.errorf(p.pos, "invalid string literal for %s: %v", key, err)
		return false
	}

	p.next()

	switch key {
	case keySince:
		dep.Since = &value
	case keyNote:
		dep.Note = &value
	}

	return true
}

// textLocator positions offsets within src itself, starting at line 1, column 1.
func textLocator(src string) Locator {
	return func(offset int) token.Position {
		pos := token.Position{Offset: offset, Line: 1, Column: 1}
		for i := 0; i < offset && i < len(src); i++ {
			if src[i] == '\n' {
				pos.Line++
				pos.Column = 1
			} else {
				pos.Column++
			}
		}

		return pos
	}
}
