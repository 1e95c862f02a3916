package compiler

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/aretw0/exprtree/pkg/domain"
)

// infixExpr is the grammar root: term ("+" term)*.
type infixExpr struct {
	Head *infixTerm   `parser:"@@"`
	Tail []*infixTerm `parser:"( '+' @@ )*"`
}

type infixTerm struct {
	Literal *infixInt  `parser:"  @@"`
	Group   *infixExpr `parser:"| '(' @@ ')'"`
}

type infixInt struct {
	Neg   bool `parser:"@'-'?"`
	Value int  `parser:"@Int"`
}

var infixParser = participle.MustBuild[infixExpr]()

// ParseInfix parses text such as "1 + (2 + 3)" into a tree.
// "+" is left-associative: "1 + 2 + 3" is ((1 + 2) + 3).
func ParseInfix(src string) (domain.Expr, error) {
	ast, err := infixParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse infix expression: %w", err)
	}
	return ast.build(), nil
}

func (e *infixExpr) build() domain.Expr {
	acc := e.Head.build()
	for _, t := range e.Tail {
		acc = domain.Add(acc, t.build())
	}
	return acc
}

func (t *infixTerm) build() domain.Expr {
	if t.Group != nil {
		return t.Group.build()
	}
	v := t.Literal.Value
	if t.Literal.Neg {
		v = -v
	}
	return domain.Num(v)
}
