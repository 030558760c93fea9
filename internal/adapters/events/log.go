package events

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
)

// LogSubscriber writes every event to the service log.
type LogSubscriber struct {
	logger *slog.Logger
}

// NewLogSubscriber returns a subscriber logging to logger.
func NewLogSubscriber(logger *slog.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

// Name implements ports.EventSubscriber.
func (s *LogSubscriber) Name() string { return "log" }

// Handle implements ports.EventSubscriber.
func (s *LogSubscriber) Handle(ctx context.Context, event domain.Event) error {
	attrs := []slog.Attr{
		slog.String("event", event.EventName()),
		slog.Time("occurred_at", event.OccurredAt()),
	}
	if e, ok := event.(todo.ItemCompletedEvent); ok {
		attrs = append(attrs,
			slog.String("event_id", e.ID.String()),
			slog.Int64("item_id", e.ItemID),
			slog.Int64("list_id", e.ListID),
			slog.Int64("user_id", e.UserID),
			slog.String("title", e.Title),
		)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "domain event", attrs...)
	return nil
}
