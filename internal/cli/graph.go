package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/exprtree/internal/presentation/graph"
	"github.com/aretw0/exprtree/internal/runtime"
)

// RunGraph prints the Mermaid diagram of an expression.
// With values set, every sum is annotated with its evaluated result.
func RunGraph(ctx context.Context, src Source, values bool, out io.Writer) error {
	expr, err := LoadExpr(src)
	if err != nil {
		return err
	}

	var overlay *graph.Overlay
	if values {
		overlay, err = graph.NewOverlay(ctx, runtime.NewEvaluator(), expr)
		if err != nil {
			return fmt.Errorf("failed to evaluate overlay: %w", err)
		}
	}

	_, err = fmt.Fprint(out, graph.GenerateMermaid(expr, overlay))
	return err
}
