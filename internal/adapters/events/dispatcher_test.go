package events_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/events"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todolist-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func noopMetrics(t *testing.T) *telemetry.Metrics {
	t.Helper()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	return m
}

func completedEvent() todo.ItemCompletedEvent {
	return todo.ItemCompletedEvent{
		ID:     uuid.New(),
		ItemID: 7,
		Title:  "Milk",
		ListID: 3,
		UserID: 1,
		At:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher(4, nil, nil)
	if err := d.Publish(context.Background(), completedEvent()); err != nil {
		t.Errorf("Publish() error = %v, want nil", err)
	}
}

func TestDispatcher_DeliversToEverySubscriber(t *testing.T) {
	t.Parallel()

	event := completedEvent()
	d := events.NewDispatcher(2, noopMetrics(t), discardLogger())

	for _, name := range []string{"a", "b", "c"} {
		sub := mocks.NewMockEventSubscriber(t)
		sub.EXPECT().Name().Return(name)
		sub.EXPECT().Handle(mock.Anything, event).Return(nil).Once()
		d.Subscribe(sub)
	}

	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish() error = %v, want nil", err)
	}
}

func TestDispatcher_FailureIsolated(t *testing.T) {
	t.Parallel()

	event := completedEvent()
	errBroker := errors.New("broker down")
	d := events.NewDispatcher(1, noopMetrics(t), discardLogger())

	failing := mocks.NewMockEventSubscriber(t)
	failing.EXPECT().Name().Return("nats")
	failing.EXPECT().Handle(mock.Anything, event).Return(errBroker)
	d.Subscribe(failing)

	var delivered atomic.Bool
	healthy := mocks.NewMockEventSubscriber(t)
	healthy.EXPECT().Name().Return("log")
	healthy.EXPECT().Handle(mock.Anything, event).RunAndReturn(func(context.Context, domain.Event) error {
		delivered.Store(true)
		return nil
	})
	d.Subscribe(healthy)

	err := d.Publish(context.Background(), event)

	if !errors.Is(err, errBroker) {
		t.Errorf("Publish() error = %v, want %v", err, errBroker)
	}
	if !delivered.Load() {
		t.Error("healthy subscriber did not receive the event")
	}
}

func TestDispatcher_SubscriberPanicReported(t *testing.T) {
	t.Parallel()

	event := completedEvent()
	d := events.NewDispatcher(2, nil, discardLogger())

	sub := mocks.NewMockEventSubscriber(t)
	sub.EXPECT().Name().Return("broken")
	sub.EXPECT().Handle(mock.Anything, event).RunAndReturn(func(context.Context, domain.Event) error {
		panic("boom")
	})
	d.Subscribe(sub)

	if err := d.Publish(context.Background(), event); err == nil {
		t.Error("Publish() error = nil, want recovered panic")
	}
}
