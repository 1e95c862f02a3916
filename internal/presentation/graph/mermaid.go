package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
)

// Overlay holds evaluated values to annotate on the graph, keyed by node ID.
type Overlay struct {
	Values map[string]int
}

// NewOverlay evaluates every subtree of expr and records its value.
// Node IDs follow the same pre-order numbering used by GenerateMermaid.
func NewOverlay(ctx context.Context, ev *runtime.Evaluator, expr domain.Expr) (*Overlay, error) {
	o := &Overlay{Values: make(map[string]int)}
	var err error
	walk(expr, func(id string, e domain.Expr) {
		if err != nil {
			return
		}
		var v int
		v, err = ev.Evaluate(ctx, e)
		o.Values[id] = v
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GenerateMermaid produces a Mermaid flowchart of the expression tree.
// It applies semantic styling:
// - Literal: (Rounded)
// - Sum: ((Circle))
// - Unrecognized: {{Hexagon}}
// Edges are labelled L and R so operand order survives rendering.
func GenerateMermaid(expr domain.Expr, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	walk(expr, func(id string, e domain.Expr) {
		label := nodeLabel(e)
		if overlay != nil {
			if v, ok := overlay.Values[id]; ok && e.Kind() == domain.KindSum {
				label = fmt.Sprintf("%s <br/> = %d", label, v)
			}
		}

		switch e.(type) {
		case domain.Literal:
			sb.WriteString(fmt.Sprintf("    %s(\"%s\")\n", id, label))
		case domain.Sum:
			sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", id, label))
			sb.WriteString(fmt.Sprintf("    %s -- L --> %sl\n", id, id))
			sb.WriteString(fmt.Sprintf("    %s -- R --> %sr\n", id, id))
		default:
			sb.WriteString(fmt.Sprintf("    %s{{\"%s\"}}\n", id, label))
		}
	})

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef evaluated fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		walk(expr, func(id string, e domain.Expr) {
			if _, ok := overlay.Values[id]; ok {
				sb.WriteString(fmt.Sprintf("    class %s evaluated;\n", id))
			}
		})
	}

	return sb.String()
}

// walk visits nodes in pre-order. The root is "n"; children append "l" or "r".
// Nil operands are skipped, which leaves a dangling edge in the diagram.
func walk(expr domain.Expr, fn func(id string, e domain.Expr)) {
	var visit func(id string, e domain.Expr)
	visit = func(id string, e domain.Expr) {
		if e == nil {
			return
		}
		fn(id, e)
		if s, ok := e.(domain.Sum); ok {
			visit(id+"l", s.Left())
			visit(id+"r", s.Right())
		}
	}
	visit("n", expr)
}

func nodeLabel(e domain.Expr) string {
	switch n := e.(type) {
	case domain.Literal:
		return fmt.Sprintf("%d", n.Value())
	case domain.Sum:
		return "+"
	default:
		return strings.ReplaceAll(fmt.Sprintf("%T", e), "\"", "'")
	}
}
