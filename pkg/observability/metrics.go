package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/aretw0/exprtree/pkg/domain"
)

// Metrics holds the evaluator collectors.
type Metrics struct {
	Evaluations  *prometheus.CounterVec
	NodesVisited *prometheus.CounterVec
	TreeDepth    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exprtree_evaluations_total",
				Help: "Total number of evaluations by result",
			},
			[]string{"result"},
		),
		NodesVisited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exprtree_nodes_visited_total",
				Help: "Total number of evaluated nodes by kind",
			},
			[]string{"kind"},
		),
		TreeDepth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exprtree_tree_depth",
				Help:    "Depth of evaluated trees",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.Evaluations, m.NodesVisited, m.TreeDepth} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) {
			m.NodesVisited.WithLabelValues(string(e.Kind)).Inc()
		},
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			m.Evaluations.WithLabelValues(result).Inc()
			m.TreeDepth.Observe(float64(e.Depth))
		},
	}
}

// Chain combines hooks so each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnVisit: func(ctx context.Context, e *domain.VisitEvent) {
			for _, h := range hooks {
				if h.OnVisit != nil {
					h.OnVisit(ctx, e)
				}
			}
		},
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			for _, h := range hooks {
				if h.OnResult != nil {
					h.OnResult(ctx, e)
				}
			}
		},
	}
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
