package directive

import (
	"go/scanner"
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"aliasgen/internal/diagnostic"
)

// Comment is a single line of a doc comment.
type Comment struct {
	// Text is the raw comment text including the leading "//".
	Text string
	// Pos is the position of the leading "//".
	Pos token.Position
}

// Directive is a located alias directive.
type Directive struct {
	// Name is the directive name without the "@".
	Name string
	// Comments are the raw comment lines the directive occupies, in order.
	Comments []string
	// Span covers the directive from "@" to the end of its last line.
	Span diagnostic.Span

	args     string
	segments []segment
}

// segment maps a run of argument text back to the file.
type segment struct {
	offset int
	pos    token.Position
}

// Find returns the directive named name in doc, or nil if there is none.
// Only "//" line comments are considered. A second directive with the same
// name is reported as malformed.
func Find(name string, doc []Comment) (*Directive, error) {
	var found *Directive

	for i := 0; i < len(doc); i++ {
		rest, restPos, ok := matchLine(name, doc[i])
		if !ok {
			continue
		}

		if found != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformedArguments,
				diagnostic.Span{Start: doc[i].Pos, End: doc[i].Pos},
				"duplicate @%s directive, first one is at %s", name, found.Span)
		}

		d := &Directive{
			Name:     name,
			Comments: []string{doc[i].Text},
			args:     rest,
			segments: []segment{{offset: 0, pos: restPos}},
		}

		for depth := parenDepth(d.args); depth > 0 && i+1 < len(doc); depth = parenDepth(d.args) {
			next := doc[i+1]
			if !strings.HasPrefix(next.Text, "//") {
				break
			}

			i++
			d.Comments = append(d.Comments, next.Text)
			d.args += "\n"
			d.segments = append(d.segments, segment{
				offset: len(d.args),
				pos:    shift(next.Pos, 2),
			})
			d.args += next.Text[2:]
		}

		d.Span = diagnostic.Span{
			Start: shift(restPos, -len(name)-1),
			End:   d.position(len(d.args)),
		}
		found = d
	}

	return found, nil
}

// Parse parses the directive arguments.
func (d *Directive) Parse() (AliasList, error) {
	return Parse(d.args, d.position)
}

// IndexIn returns the index in lines at which the directive's comment lines
// appear as one consecutive run, or -1.
func (d *Directive) IndexIn(lines []string) int {
	if len(d.Comments) == 0 {
		return -1
	}

	for i := 0; i+len(d.Comments) <= len(lines); i++ {
		if slices.Equal(lines[i:i+len(d.Comments)], d.Comments) {
			return i
		}
	}

	return -1
}

// position maps an argument offset back to the file.
func (d *Directive) position(offset int) token.Position {
	seg := d.segments[0]
	for _, s := range d.segments[1:] {
		if s.offset > offset {
			break
		}

		seg = s
	}

	return shift(seg.pos, offset-seg.offset)
}

// matchLine reports whether c starts a directive and returns the text after the
// directive name along with its position.
func matchLine(name string, c Comment) (string, token.Position, bool) {
	if !strings.HasPrefix(c.Text, "//") {
		return "", token.Position{}, false
	}

	body := c.Text[2:]
	trimmed := strings.TrimLeft(body, " \t")
	marker := "@" + name

	if !strings.HasPrefix(trimmed, marker) {
		return "", token.Position{}, false
	}

	rest := trimmed[len(marker):]
	if r, _ := utf8.DecodeRuneInString(rest); r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return "", token.Position{}, false
	}

	return rest, shift(c.Pos, 2+len(body)-len(trimmed)+len(marker)), true
}

// parenDepth returns the parenthesis balance of src, or 0 if src does not
// open with a parenthesis.
func parenDepth(src string) int {
	var s scanner.Scanner

	fset := token.NewFileSet()
	s.Init(fset.AddFile("", fset.Base(), len(src)), []byte(src), nil, 0)

	depth, opened := 0, false

	for {
		_, tok, _ := s.Scan()
		switch tok {
		case token.EOF:
			if !opened {
				return 0
			}

			return depth
		case token.LPAREN:
			depth++
			opened = true
		case token.RPAREN:
			depth--
		case token.SEMICOLON:
		default:
			if !opened {
				return 0
			}
		}
	}
}

func shift(pos token.Position, n int) token.Position {
	if !pos.IsValid() {
		return pos
	}

	pos.Offset += n
	pos.Column += n

	return pos
}
