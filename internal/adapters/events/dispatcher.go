// Package events delivers domain events raised by committed use cases.
//
// The Dispatcher is the service's ports.EventPublisher. It hands each event
// to every registered ports.EventSubscriber with bounded concurrency:
//
//	d := events.NewDispatcher(cfg.Events.MaxWorkers, metrics, logger)
//	d.Subscribe(events.NewLogSubscriber(logger))
//	d.Subscribe(events.NewNATSForwarder(conn, cfg.Events.NATS.SubjectPrefix, cfg.Events.NATS.FlushTimeout, guard))
//
// Subscribers: structured log, completion metrics, NATS forwarding and
// Redis completion statistics.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-todolist-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

var _ ports.EventPublisher = (*Dispatcher)(nil)

// Dispatcher fans events out to subscribers.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers []ports.EventSubscriber
	maxWorkers  int
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// NewDispatcher creates a Dispatcher running at most maxWorkers subscribers
// at once. A nil metrics skips metric recording.
func NewDispatcher(maxWorkers int, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{maxWorkers: maxWorkers, metrics: metrics, logger: logger}
}

// Subscribe registers s for every subsequent Publish.
func (d *Dispatcher) Subscribe(s ports.EventSubscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, s)
}

// Publish delivers event to all subscribers and waits for them. One
// subscriber failing does not stop the others; the failures are logged and
// returned joined.
func (d *Dispatcher) Publish(ctx context.Context, event domain.Event) error {
	d.mu.RLock()
	subs := make([]ports.EventSubscriber, len(d.subscribers))
	copy(subs, d.subscribers)
	d.mu.RUnlock()

	results := fanout.Run(ctx, d.maxWorkers, subs, func(ctx context.Context, s ports.EventSubscriber) (struct{}, error) {
		return struct{}{}, s.Handle(ctx, event)
	})

	for i, r := range results {
		d.record(ctx, event, subs[i].Name(), r.Err)
	}

	if err := fanout.Errors(results); err != nil {
		return fmt.Errorf("publishing %s: %w", event.EventName(), err)
	}
	return nil
}

func (d *Dispatcher) record(ctx context.Context, event domain.Event, subscriber string, err error) {
	result := telemetry.ResultSuccess
	if err != nil {
		result = telemetry.ResultFailure
		d.logger.WarnContext(ctx, "event subscriber failed",
			slog.String("event", event.EventName()),
			slog.String("subscriber", subscriber),
			slog.Any("error", err),
		)
	}

	if d.metrics == nil {
		return
	}
	d.metrics.EventsPublished.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEvent.String(event.EventName()),
		telemetry.AttrSubscriber.String(subscriber),
		telemetry.AttrResult.String(result),
	))
}
