package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/exprtree/internal/presentation/tui"
	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
	"github.com/aretw0/exprtree/pkg/observability"
)

// EvalOptions configures RunEval.
type EvalOptions struct {
	Source   Source
	Trace    bool
	JSON     bool   // emit one NDJSON result line
	Pretty   bool   // render the trace as markdown through glamour
	Style    string // glamour style, empty for auto
	Metrics  bool   // append Prometheus metrics after the result
	MaxDepth int
	Debug    bool
}

// EvalResult is the JSON shape of an evaluation.
type EvalResult struct {
	Expr  string   `json:"expr"`
	Value int      `json:"value"`
	Trace []string `json:"trace,omitempty"`
	Error string   `json:"error,omitempty"`
}

// RunEval loads, evaluates and prints an expression.
func RunEval(ctx context.Context, opts EvalOptions, out io.Writer) error {
	logger := createLogger(opts.Debug)

	expr, err := LoadExpr(opts.Source)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	hooks := createDebugHooks(logger)
	if opts.Metrics {
		m, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}
		hooks = observability.Chain(hooks, m.Hooks())
	}

	ev := runtime.NewEvaluator(
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithMaxDepth(opts.MaxDepth),
	)

	var (
		value int
		trace domain.Trace
	)
	if opts.Trace {
		value, trace, err = ev.EvaluateWithTrace(ctx, expr)
	} else {
		value, err = ev.Evaluate(ctx, expr)
	}

	if opts.JSON {
		res := EvalResult{Expr: expr.String(), Value: value, Trace: trace.Lines()}
		if err != nil {
			res.Error = err.Error()
		}
		if encErr := json.NewEncoder(out).Encode(res); encErr != nil {
			return encErr
		}
	} else if err == nil {
		if err := printResult(out, opts, expr, value, trace); err != nil {
			return err
		}
	}
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if opts.Metrics {
		printSystemMessage(out, "metrics")
		return observability.WriteText(out, reg)
	}
	return nil
}

func printResult(out io.Writer, opts EvalOptions, expr domain.Expr, value int, trace domain.Trace) error {
	if !opts.Trace {
		_, err := fmt.Fprintln(out, value)
		return err
	}

	if opts.Pretty {
		render, err := tui.NewRenderer(opts.Style)
		if err != nil {
			return err
		}
		rendered, err := render(tui.FormatTrace(expr, value, trace))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}

	for _, line := range trace {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, value)
	return err
}
