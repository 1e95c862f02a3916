package domain

import "context"

// EventType defines the category of the event.
type EventType string

const (
	EventNodeVisit EventType = "node_visit"
	EventResult    EventType = "result"
)

// VisitEvent is emitted once per node, after the node has been evaluated.
type VisitEvent struct {
	Type  EventType `json:"type"`
	Kind  Kind      `json:"kind"`
	Depth int       `json:"depth"` // root is 0
	Value int       `json:"value"`
}

// ResultEvent is emitted once per evaluation, successful or not.
type ResultEvent struct {
	Type  EventType `json:"type"`
	Value int       `json:"value"`
	Nodes int       `json:"nodes"`
	Depth int       `json:"depth"`
	Err   error     `json:"-"`
}

// LifecycleHooks defines callbacks for evaluator observability.
// Hooks observe evaluation; they cannot alter its result.
type LifecycleHooks struct {
	OnVisit  func(context.Context, *VisitEvent)
	OnResult func(context.Context, *ResultEvent)
}
