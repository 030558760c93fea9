package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// EventPublisher is the event sink. Application services hand it events
// drained from a committed use case. A publish error is reported by the
// caller but never undoes the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// EventSubscriber reacts to published events. Subscribers decide for
// themselves which event names they care about and ignore the rest.
type EventSubscriber interface {
	// Name identifies the subscriber in logs and metrics (e.g., "nats").
	Name() string

	Handle(ctx context.Context, event domain.Event) error
}
