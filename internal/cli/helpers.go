package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/exprtree/internal/compiler"
	"github.com/aretw0/exprtree/internal/logging"
	"github.com/aretw0/exprtree/pkg/domain"
)

// Source describes where an expression comes from.
// File takes precedence over Args; File "-" reads standard input.
type Source struct {
	Args  []string
	File  string
	Stdin io.Reader
}

// LoadExpr resolves a Source into a tree.
func LoadExpr(src Source) (domain.Expr, error) {
	p := compiler.NewParser()

	switch {
	case src.File == "-":
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return p.Parse(data)
	case src.File != "":
		return p.ParseFile(src.File)
	case len(src.Args) > 0:
		return compiler.ParseInfix(strings.Join(src.Args, " "))
	default:
		return nil, fmt.Errorf("no expression given: pass infix text or --file")
	}
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout results).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) {
			logger.Debug("Visit Node", "kind", e.Kind, "depth", e.Depth, "value", e.Value)
		},
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			if e.Err != nil {
				logger.Debug("Result (Error)", "nodes", e.Nodes, "err", e.Err)
			} else {
				logger.Debug("Result (Success)", "value", e.Value, "nodes", e.Nodes, "depth", e.Depth)
			}
		},
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
