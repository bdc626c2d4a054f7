package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostic codes.
const (
	// CodeMalformedArguments reports a directive whose arguments do not match the entry grammar.
	CodeMalformedArguments = "malformed-arguments"
	// CodeUnsupportedDeclaration reports a directive attached to a declaration that cannot be aliased.
	CodeUnsupportedDeclaration = "unsupported-declaration"
	// CodeMalformedSelfType reports a method whose receiver type has no leading type name.
	CodeMalformedSelfType = "malformed-self-type"
	// CodeSinceNotSemver warns about a deprecation "since" value that is not a semantic version.
	CodeSinceNotSemver = "since-not-semver"
	// CodeDuplicateAlias warns about an alias name repeated within one directive.
	CodeDuplicateAlias = "duplicate-alias"
)

//go:generate go tool stringer -type=Severity -trimprefix=Severity -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Span is a source range. A zero Span means the location is unknown.
type Span struct {
	Start token.Position
	End   token.Position
}

// IsValid reports whether the span points into a source file.
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}

// String returns "file:line:col" of the span start, or "-" if unknown.
func (s Span) String() string {
	return s.Start.String()
}

// Diagnostic represents a single diagnostic message.
// *Diagnostic implements error, so engine failures travel as plain errors.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Span locates the diagnostic in the source.
	Span Span
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Errorf creates an error diagnostic.
func Errorf(code string, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}
}

// Warningf creates a warning diagnostic.
func Warningf(code string, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}
}

// WithSuggestions returns d with the given suggestions appended.
func (d *Diagnostic) WithSuggestions(s ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, s...)
	return d
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return d.String()
}

// String returns a formatted diagnostic string.
func (d *Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (" + strings.Join(d.Suggestions, "; ") + ")"
	}

	if d.Span.IsValid() {
		return d.Span.String() + ": " + msg
	}

	return msg
}

// As extracts a *Diagnostic from err's chain.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}

	return nil, false
}

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []*Diagnostic
	Warnings []*Diagnostic
	Infos    []*Diagnostic
}

// Add files d under its severity.
func (ds *Diagnostics) Add(d *Diagnostic) {
	switch d.Severity {
	case SeverityError:
		ds.Errors = append(ds.Errors, d)
	case SeverityWarning:
		ds.Warnings = append(ds.Warnings, d)
	default:
		ds.Infos = append(ds.Infos, d)
	}
}

// AddError records err. A *Diagnostic in its chain keeps its code and span;
// any other error becomes an uncoded error diagnostic.
func (ds *Diagnostics) AddError(err error) {
	if d, ok := As(err); ok {
		ds.Add(d)
		return
	}

	ds.Add(&Diagnostic{Severity: SeverityError, Message: err.Error()})
}

// HasErrors returns true if there are any error diagnostics.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (ds *Diagnostics) Merge(other Diagnostics) {
	ds.Errors = append(ds.Errors, other.Errors...)
	ds.Warnings = append(ds.Warnings, other.Warnings...)
	ds.Infos = append(ds.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (ds *Diagnostics) All() []*Diagnostic {
	all := make([]*Diagnostic, 0, len(ds.Errors)+len(ds.Warnings)+len(ds.Infos))
	all = append(all, ds.Errors...)
	all = append(all, ds.Warnings...)

	return append(all, ds.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (ds *Diagnostics) Err() error {
	if !ds.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(ds.Errors))
	for _, e := range ds.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}
