package observability_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/exprtree/internal/runtime"
	"github.com/aretw0/exprtree/pkg/domain"
	"github.com/aretw0/exprtree/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	ev := runtime.NewEvaluator(runtime.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	_, err = ev.Evaluate(ctx, domain.Add(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(3)))
	require.NoError(t, err)
	_, err = ev.Evaluate(ctx, domain.Num(5))
	require.NoError(t, err)
	_, err = ev.Evaluate(ctx, nil)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.NodesVisited.WithLabelValues("num")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NodesVisited.WithLabelValues("sum")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TreeDepth))

	var buf bytes.Buffer
	require.NoError(t, observability.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "exprtree_tree_depth_count 3")
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.ErrorContains(t, err, "failed to register collector")
}

func TestChain(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) { order = append(order, "a") },
	}
	b := domain.LifecycleHooks{
		OnVisit:  func(ctx context.Context, e *domain.VisitEvent) { order = append(order, "b") },
		OnResult: func(ctx context.Context, e *domain.ResultEvent) { order = append(order, "b-result") },
	}

	ev := runtime.NewEvaluator(runtime.WithLifecycleHooks(observability.Chain(a, b)))
	_, err := ev.Evaluate(context.Background(), domain.Num(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "b-result"}, order)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	ev := runtime.NewEvaluator(runtime.WithLifecycleHooks(m.Hooks()))
	_, err = ev.Evaluate(context.Background(), domain.Add(domain.Num(4), domain.Num(2)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, observability.WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, `exprtree_evaluations_total{result="ok"} 1`)
	assert.Contains(t, out, `exprtree_nodes_visited_total{kind="num"} 2`)
	assert.Contains(t, out, "# TYPE exprtree_tree_depth histogram")
}
