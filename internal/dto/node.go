package dto

// Node is the loosely typed form of one expression node in a YAML/JSON document.
// It uses "mapstructure" tags so the same struct serves the short form
// ({num: 4}, {sum: [a, b]}) and the long form ({kind: sum, left: a, right: b}).
type Node struct {
	Kind  string `json:"kind,omitempty" mapstructure:"kind"`
	Value any    `json:"value,omitempty" mapstructure:"value"`

	// Short form
	Num any   `json:"num,omitempty" mapstructure:"num"`
	Sum []any `json:"sum,omitempty" mapstructure:"sum"`

	// Long form operands
	Left  any `json:"left,omitempty" mapstructure:"left"`
	Right any `json:"right,omitempty" mapstructure:"right"`
}
