package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/exprtree/pkg/domain"
)

// Evaluator computes the integer denoted by an expression tree.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDepth int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EvaluatorOption {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default no-op logger.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxDepth bounds the nesting depth of evaluated trees. Zero means unlimited.
func WithMaxDepth(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the value of expr.
func (e *Evaluator) Evaluate(ctx context.Context, expr domain.Expr) (int, error) {
	w := walker{ev: e, ctx: ctx}
	v, err := w.eval(expr, 0)
	e.finish(ctx, expr, v, err)
	return v, err
}

// EvaluateWithTrace returns the value of expr together with its trace.
// The trace never influences the result. On failure the lines recorded before
// the failing node are returned with the error.
func (e *Evaluator) EvaluateWithTrace(ctx context.Context, expr domain.Expr) (int, domain.Trace, error) {
	w := walker{ev: e, ctx: ctx, trace: domain.Trace{}}
	v, err := w.eval(expr, 0)
	e.finish(ctx, expr, v, err)
	return v, w.trace, err
}

func (e *Evaluator) finish(ctx context.Context, expr domain.Expr, v int, err error) {
	if err != nil {
		e.logger.Debug("evaluation failed", "err", err)
		v = 0
	} else {
		e.logger.Debug("evaluation finished", "value", v)
	}
	if e.hooks.OnResult != nil {
		e.hooks.OnResult(ctx, &domain.ResultEvent{
			Type:  domain.EventResult,
			Value: v,
			Nodes: domain.Size(expr),
			Depth: domain.Depth(expr),
			Err:   err,
		})
	}
}

type walker struct {
	ev    *Evaluator
	ctx   context.Context
	trace domain.Trace
}

func (w *walker) eval(expr domain.Expr, depth int) (int, error) {
	if w.ev.maxDepth > 0 && depth >= w.ev.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", domain.ErrMaxDepthExceeded, w.ev.maxDepth)
	}

	switch n := expr.(type) {
	case domain.Literal:
		v := n.Value()
		if w.trace != nil {
			w.trace = append(w.trace, domain.NumLine(v))
		}
		w.visit(domain.KindNum, depth, v)
		return v, nil

	case domain.Sum:
		left, err := w.eval(n.Left(), depth+1)
		if err != nil {
			return 0, err
		}
		right, err := w.eval(n.Right(), depth+1)
		if err != nil {
			return 0, err
		}
		if w.trace != nil {
			w.trace = append(w.trace, domain.SumLine(left, right))
		}
		v := left + right
		w.visit(domain.KindSum, depth, v)
		return v, nil

	default:
		return 0, fmt.Errorf("%w: %T", domain.ErrUnrecognizedExpressionKind, expr)
	}
}

func (w *walker) visit(kind domain.Kind, depth, value int) {
	w.ev.logger.Debug("node evaluated", "kind", kind, "depth", depth, "value", value)
	if w.ev.hooks.OnVisit != nil {
		w.ev.hooks.OnVisit(w.ctx, &domain.VisitEvent{
			Type:  domain.EventNodeVisit,
			Kind:  kind,
			Depth: depth,
			Value: value,
		})
	}
}
