package domain

import "fmt"

// Trace is the ordered, append-only log produced by traced evaluation.
// Lines are written in post-order, left operand before right.
type Trace []string

// Lines returns a copy of the trace lines.
func (t Trace) Lines() []string {
	out := make([]string, len(t))
	copy(out, t)
	return out
}

// NumLine formats the line recorded when a literal is visited.
func NumLine(v int) string {
	return fmt.Sprintf("num: %d", v)
}

// SumLine formats the line recorded after both operands of a sum are evaluated.
func SumLine(left, right int) string {
	return fmt.Sprintf("Sum: %d + %d", left, right)
}
