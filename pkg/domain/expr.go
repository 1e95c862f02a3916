package domain

import (
	"fmt"
	"strconv"
)

// Expr is an arithmetic expression tree.
// The set of variants is closed: Literal and Sum are the only implementations,
// enforced by the unexported marker method.
type Expr interface {
	// Kind reports which variant the expression is.
	Kind() Kind
	// String renders the expression in infix form, e.g. "(1 + 2)".
	String() string

	expr()
}

// Literal is a leaf holding a constant integer.
type Literal struct {
	value int
}

// Num creates a Literal.
func Num(v int) Literal {
	return Literal{value: v}
}

// Value returns the integer held by the literal.
func (l Literal) Value() int { return l.value }

func (l Literal) Kind() Kind { return KindNum }

func (l Literal) String() string { return strconv.Itoa(l.value) }

func (Literal) expr() {}

// Sum combines two sub-expressions by addition.
// A Sum exclusively owns its children; trees built through Num and Add are acyclic.
type Sum struct {
	left  Expr
	right Expr
}

// Add creates a Sum of left and right.
func Add(left, right Expr) Sum {
	return Sum{left: left, right: right}
}

// Left returns the left operand.
func (s Sum) Left() Expr { return s.left }

// Right returns the right operand.
func (s Sum) Right() Expr { return s.right }

func (s Sum) Kind() Kind { return KindSum }

func (s Sum) String() string {
	return fmt.Sprintf("(%s + %s)", describe(s.left), describe(s.right))
}

func (Sum) expr() {}

// Depth returns the number of levels in the tree. A lone literal has depth 1.
// Nil operands count as depth 0.
func Depth(e Expr) int {
	s, ok := e.(Sum)
	if !ok {
		if e == nil {
			return 0
		}
		return 1
	}
	return 1 + max(Depth(s.left), Depth(s.right))
}

// Size returns the number of nodes in the tree.
func Size(e Expr) int {
	switch v := e.(type) {
	case Literal:
		return 1
	case Sum:
		return 1 + Size(v.left) + Size(v.right)
	default:
		return 0
	}
}

func describe(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
