package expand

//go:generate go tool stringer -type=Kind,MarkerShape -output=kind_string.go

// Kind classifies an aliasable declaration.
type Kind int

const (
	_ Kind = iota // zero value is an unclassified declaration

	KindFunction
	KindStructure
	KindContract
	KindImplementation
	KindConstant
)

// Describe returns the Go wording for the kind.
func (k Kind) Describe() string {
	switch k {
	case KindFunction:
		return "function"
	case KindStructure:
		return "struct type"
	case KindContract:
		return "interface type"
	case KindImplementation:
		return "method"
	case KindConstant:
		return "constant"
	default:
		return k.String()
	}
}

// MarkerShape selects the deprecation marker text by which metadata is present.
type MarkerShape int

const (
	ShapeBare MarkerShape = iota
	ShapeNote
	ShapeSince
	ShapeSinceNote
)
