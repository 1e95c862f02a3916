package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/exprtree/internal/validator"
	"github.com/aretw0/exprtree/pkg/domain"
)

// RunValidate decodes an expression without evaluating it and reports its shape.
func RunValidate(src Source, maxDepth int, out io.Writer) error {
	expr, err := LoadExpr(src)
	if err != nil {
		return err
	}
	if err := validator.ValidateTree(expr, maxDepth); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Expression is valid: %d nodes, depth %d\n", domain.Size(expr), domain.Depth(expr))
	return err
}
