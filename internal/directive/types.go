package directive

import (
	"aliasgen/internal/diagnostic"
)

// DefaultName is the directive name used when none is configured.
const DefaultName = "alias"

const (
	keywordDeprecated = "deprecated"
	keySince          = "since"
	keyNote           = "note"
)

// AliasSpec is one requested duplicate-and-rename instruction.
// A nil Deprecation is a plain rename.
type AliasSpec struct {
	// Name is the identifier given to the duplicate.
	Name string
	// Deprecation carries the deprecation metadata, if any.
	Deprecation *Deprecation
	// Span locates Name in the source.
	Span diagnostic.Span
}

// IsDeprecated reports whether the duplicate must carry a deprecation marker.
func (s AliasSpec) IsDeprecated() bool {
	return s.Deprecation != nil
}

// Deprecation is the metadata of a deprecated(...) entry. A nil field is absent;
// an empty string is present.
type Deprecation struct {
	Since *string
	Note  *string
}

// AliasList is an ordered, non-empty sequence of alias specs.
type AliasList []AliasSpec

// Names returns the alias names in order.
func (l AliasList) Names() []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Name
	}

	return names
}
