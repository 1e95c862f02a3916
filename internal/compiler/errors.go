package compiler

import (
	"fmt"
	"strings"
)

// DecodeError reports a failure at a specific node of a document.
type DecodeError struct {
	Path string // dotted path from the root, e.g. "root.left.right"
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("at %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NumberFormatError is returned when a literal value cannot be read as an integer.
type NumberFormatError struct {
	Input string
	Err   error // underlying strconv error, if any
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("for input string: %q", e.Input)
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

func childPath(parent string, parts ...string) string {
	return parent + "." + strings.Join(parts, ".")
}
