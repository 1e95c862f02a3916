package domain

// Kind identifies an expression variant.
type Kind string

const (
	// KindNum is the kind reported by Literal.
	KindNum Kind = "num"
	// KindSum is the kind reported by Sum.
	KindSum Kind = "sum"
)

// Field constants for mapstructure and YAML standardization of expression documents.
const (
	KeyKind  = "kind"
	KeyValue = "value"
	KeyLeft  = "left"
	KeyRight = "right"
)
