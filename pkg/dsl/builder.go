package dsl

import (
	"errors"

	"github.com/aretw0/exprtree/pkg/domain"
)

// ErrEmptySum is returned when a sum is requested over zero terms.
var ErrEmptySum = errors.New("sum requires at least one term")

// Builder wraps a finished subtree.
type Builder struct {
	expr domain.Expr
}

// Num starts a builder from a literal.
func Num(v int) *Builder {
	return &Builder{expr: domain.Num(v)}
}

// From starts a builder from an existing tree.
func From(e domain.Expr) *Builder {
	return &Builder{expr: e}
}

// Plus returns a builder whose root is the sum of b (left) and other (right).
func (b *Builder) Plus(other *Builder) *Builder {
	return &Builder{expr: domain.Add(b.expr, other.expr)}
}

// PlusNum is shorthand for Plus(Num(v)).
func (b *Builder) PlusNum(v int) *Builder {
	return b.Plus(Num(v))
}

// Build returns the underlying tree.
func (b *Builder) Build() domain.Expr {
	return b.expr
}

// SumOf left-folds the given integers into a tree: SumOf(1, 2, 3) is ((1 + 2) + 3).
// A single value yields a bare literal.
func SumOf(values ...int) (domain.Expr, error) {
	terms := make([]domain.Expr, len(values))
	for i, v := range values {
		terms[i] = domain.Num(v)
	}
	return SumAll(terms...)
}

// SumAll left-folds the given trees.
func SumAll(terms ...domain.Expr) (domain.Expr, error) {
	if len(terms) == 0 {
		return nil, ErrEmptySum
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = domain.Add(acc, t)
	}
	return acc, nil
}
