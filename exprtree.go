package exprtree

import (
	"context"
	"log/slog"

	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
)

// Version is the release of the exprtree module.
const Version = "0.3.0"

// Expr, Literal and Sum are re-exported so library users need a single import.
type (
	Expr    = domain.Expr
	Literal = domain.Literal
	Sum     = domain.Sum
	Trace   = domain.Trace
)

// Num creates a literal expression.
func Num(v int) Literal { return domain.Num(v) }

// Add creates a sum of two expressions.
func Add(left, right Expr) Sum { return domain.Add(left, right) }

var defaultEvaluator = runtime.NewEvaluator()

// Evaluate returns the integer value of expr.
// It fails with domain.ErrUnrecognizedExpressionKind when expr (or any
// sub-expression) is not a Literal or a Sum.
func Evaluate(expr Expr) (int, error) {
	return defaultEvaluator.Evaluate(context.Background(), expr)
}

// EvaluateWithTrace is Evaluate plus the ordered trace of visited nodes.
func EvaluateWithTrace(expr Expr) (int, Trace, error) {
	return defaultEvaluator.EvaluateWithTrace(context.Background(), expr)
}

// Evaluator is the configurable entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Evaluator struct {
	runtime  *runtime.Evaluator
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDepth int
}

// Option defines a functional option for configuring the Evaluator.
type Option func(*Evaluator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithMaxDepth rejects trees nested deeper than n levels (0 = unlimited).
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		e.maxDepth = n
	}
}

// New initializes an Evaluator.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{}
	for _, opt := range opts {
		opt(ev)
	}

	ev.runtime = runtime.NewEvaluator(
		runtime.WithLifecycleHooks(ev.hooks),
		runtime.WithLogger(ev.logger),
		runtime.WithMaxDepth(ev.maxDepth),
	)
	return ev
}

// Evaluate returns the integer value of expr.
func (e *Evaluator) Evaluate(ctx context.Context, expr Expr) (int, error) {
	return e.runtime.Evaluate(ctx, expr)
}

// EvaluateWithTrace returns the value of expr and the trace of its evaluation.
func (e *Evaluator) EvaluateWithTrace(ctx context.Context, expr Expr) (int, Trace, error) {
	return e.runtime.EvaluateWithTrace(ctx, expr)
}
