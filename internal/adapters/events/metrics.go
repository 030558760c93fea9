package events

import (
	"context"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
)

// CompletionMetrics counts completed items on the todo.items.completed
// instrument.
type CompletionMetrics struct {
	metrics *telemetry.Metrics
}

// NewCompletionMetrics returns a subscriber recording to metrics.
func NewCompletionMetrics(metrics *telemetry.Metrics) *CompletionMetrics {
	return &CompletionMetrics{metrics: metrics}
}

// Name implements ports.EventSubscriber.
func (s *CompletionMetrics) Name() string { return "metrics" }

// Handle implements ports.EventSubscriber. Other events are ignored.
func (s *CompletionMetrics) Handle(ctx context.Context, event domain.Event) error {
	if _, ok := event.(todo.ItemCompletedEvent); ok {
		s.metrics.ItemsCompleted.Add(ctx, 1)
	}
	return nil
}
