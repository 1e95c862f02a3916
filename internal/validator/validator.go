package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/exprtree/pkg/domain"
)

// Error lists every problem found in a tree.
type Error struct {
	Problems []error
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(msgs, "\n- "))
}

// Unwrap exposes the problems to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return e.Problems
}

type pending struct {
	path  string
	expr  domain.Expr
	depth int // root is 1
}

// ValidateTree crawls expr breadth-first and reports unrecognized nodes and,
// when maxDepth > 0, nodes nested deeper than maxDepth. Unlike evaluation it
// does not stop at the first problem.
func ValidateTree(expr domain.Expr, maxDepth int) error {
	queue := []pending{{path: "root", expr: expr, depth: 1}}
	var problems []error
	tooDeep := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if maxDepth > 0 && cur.depth > maxDepth && !tooDeep {
			tooDeep = true
			problems = append(problems, fmt.Errorf("%w: %s is at depth %d, limit %d",
				domain.ErrMaxDepthExceeded, cur.path, cur.depth, maxDepth))
		}

		switch n := cur.expr.(type) {
		case domain.Literal:
		case domain.Sum:
			queue = append(queue,
				pending{path: cur.path + "." + domain.KeyLeft, expr: n.Left(), depth: cur.depth + 1},
				pending{path: cur.path + "." + domain.KeyRight, expr: n.Right(), depth: cur.depth + 1},
			)
		default:
			problems = append(problems, fmt.Errorf("%w: %T at %s", domain.ErrUnrecognizedExpressionKind, cur.expr, cur.path))
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
