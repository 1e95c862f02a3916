package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
)

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		expr domain.Expr
		want int
	}{
		{"Literal", domain.Num(42), 42},
		{"Negative Literal", domain.Num(-7), -7},
		{"Simple Sum", domain.Add(domain.Num(4), domain.Num(2)), 6},
		{"Left Nested", domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(3)), 6},
		{"Right Nested", domain.Add(domain.Num(1), domain.Add(domain.Num(2), domain.Num(3))), 6},
		{"Mixed Signs", domain.Add(domain.Num(10), domain.Num(-15)), -5},
	}

	ev := runtime.NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_SumIsSumOfOperands(t *testing.T) {
	ev := runtime.NewEvaluator()
	ctx := context.Background()
	operands := []domain.Expr{
		domain.Num(0),
		domain.Num(99),
		domain.Add(domain.Num(3), domain.Num(4)),
		domain.Add(domain.Add(domain.Num(-1), domain.Num(-2)), domain.Num(8)),
	}

	for _, a := range operands {
		for _, b := range operands {
			va, err := ev.Evaluate(ctx, a)
			require.NoError(t, err)
			vb, err := ev.Evaluate(ctx, b)
			require.NoError(t, err)

			got, err := ev.Evaluate(ctx, domain.Add(a, b))
			require.NoError(t, err)
			assert.Equal(t, va+vb, got, "%s + %s", a, b)
		}
	}
}

func TestEvaluator_Idempotent(t *testing.T) {
	ev := runtime.NewEvaluator()
	tree := domain.Add(domain.Add(domain.Num(5), domain.Num(6)), domain.Num(7))

	first, err := ev.Evaluate(context.Background(), tree)
	require.NoError(t, err)
	second, err := ev.Evaluate(context.Background(), tree)
	require.NoError(t, err)

	assert.Equal(t, 18, first)
	assert.Equal(t, first, second)
}

func TestEvaluator_Trace(t *testing.T) {
	tests := []struct {
		name      string
		expr      domain.Expr
		wantValue int
		wantTrace []string
	}{
		{
			name:      "Sum Of Literals",
			expr:      domain.Add(domain.Num(4), domain.Num(2)),
			wantValue: 6,
			wantTrace: []string{"num: 4", "num: 2", "Sum: 4 + 2"},
		},
		{
			name:      "Literal Only",
			expr:      domain.Num(42),
			wantValue: 42,
			wantTrace: []string{"num: 42"},
		},
		{
			name:      "Post Order",
			expr:      domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(3)),
			wantValue: 6,
			wantTrace: []string{"num: 1", "num: 2", "Sum: 1 + 2", "num: 3", "Sum: 3 + 3"},
		},
		{
			name:      "Right Nested",
			expr:      domain.Add(domain.Num(1), domain.Add(domain.Num(2), domain.Num(3))),
			wantValue: 6,
			wantTrace: []string{"num: 1", "num: 2", "num: 3", "Sum: 2 + 3", "Sum: 1 + 5"},
		},
	}

	ev := runtime.NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, trace, err := ev.EvaluateWithTrace(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantTrace, trace.Lines())

			plain, err := ev.Evaluate(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, plain, v, "trace must not alter the result")
		})
	}
}

func TestEvaluator_UnrecognizedKind(t *testing.T) {
	lit := domain.Num(1)
	tests := []struct {
		name string
		expr domain.Expr
	}{
		{"Nil Expression", nil},
		{"Zero Sum", domain.Sum{}},
		{"Nil Right Operand", domain.Add(domain.Num(1), nil)},
		{"Pointer Variant", &lit},
	}

	ev := runtime.NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ev.Evaluate(context.Background(), tt.expr)
			assert.ErrorIs(t, err, domain.ErrUnrecognizedExpressionKind)
			assert.Zero(t, v)
		})
	}

	t.Run("Trace Stops At Failure", func(t *testing.T) {
		_, trace, err := ev.EvaluateWithTrace(context.Background(), domain.Add(domain.Num(9), nil))
		assert.ErrorIs(t, err, domain.ErrUnrecognizedExpressionKind)
		assert.Equal(t, []string{"num: 9"}, trace.Lines())
	})
}

func TestEvaluator_MaxDepth(t *testing.T) {
	deep := domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(3)) // depth 3

	t.Run("Within Limit", func(t *testing.T) {
		ev := runtime.NewEvaluator(runtime.WithMaxDepth(3))
		v, err := ev.Evaluate(context.Background(), deep)
		require.NoError(t, err)
		assert.Equal(t, 6, v)
	})

	t.Run("Over Limit", func(t *testing.T) {
		ev := runtime.NewEvaluator(runtime.WithMaxDepth(2))
		_, err := ev.Evaluate(context.Background(), deep)
		assert.ErrorIs(t, err, domain.ErrMaxDepthExceeded)
	})

	t.Run("Zero Is Unlimited", func(t *testing.T) {
		ev := runtime.NewEvaluator(runtime.WithMaxDepth(0))
		_, err := ev.Evaluate(context.Background(), deep)
		assert.NoError(t, err)
	})
}

func TestEvaluator_LifecycleHooks(t *testing.T) {
	var visited []domain.VisitEvent
	var results []domain.ResultEvent

	hooks := domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) {
			visited = append(visited, *e)
		},
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			results = append(results, *e)
		},
	}
	ev := runtime.NewEvaluator(runtime.WithLifecycleHooks(hooks))

	v, err := ev.Evaluate(context.Background(), domain.Add(domain.Num(4), domain.Num(2)))
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.Len(t, visited, 3)
	assert.Equal(t, domain.VisitEvent{Type: domain.EventNodeVisit, Kind: domain.KindNum, Depth: 1, Value: 4}, visited[0])
	assert.Equal(t, domain.VisitEvent{Type: domain.EventNodeVisit, Kind: domain.KindNum, Depth: 1, Value: 2}, visited[1])
	assert.Equal(t, domain.VisitEvent{Type: domain.EventNodeVisit, Kind: domain.KindSum, Depth: 0, Value: 6}, visited[2])

	require.Len(t, results, 1)
	assert.Equal(t, 6, results[0].Value)
	assert.Equal(t, 3, results[0].Nodes)
	assert.Equal(t, 2, results[0].Depth)
	assert.NoError(t, results[0].Err)

	t.Run("Failure Reported", func(t *testing.T) {
		results = nil
		_, err := ev.Evaluate(context.Background(), nil)
		require.Error(t, err)
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, domain.ErrUnrecognizedExpressionKind)
	})
}

func TestEvaluator_ConcurrentUse(t *testing.T) {
	ev := runtime.NewEvaluator()
	tree := domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Add(domain.Num(3), domain.Num(4)))

	const workers = 8
	errs := make(chan error, workers)
	values := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func() {
			v, err := ev.Evaluate(context.Background(), tree)
			errs <- err
			values <- v
		}()
	}
	for i := 0; i < workers; i++ {
		assert.NoError(t, <-errs)
		assert.Equal(t, 10, <-values)
	}
}
