package domain

import "time"

// Event is an immutable record of something that happened to an aggregate.
type Event interface {
	// EventName identifies the event type on the wire (e.g., "todo.item.completed").
	EventName() string
	// OccurredAt is when the aggregate raised the event.
	OccurredAt() time.Time
}

// EventRecorder collects events raised by aggregate behavior during a single
// use case. Aggregates only ever append; draining and dispatch belong to the
// application layer.
type EventRecorder interface {
	Raise(event Event)
}

// EventRecorderFunc adapts a function to EventRecorder.
type EventRecorderFunc func(Event)

// Raise calls f(event).
func (f EventRecorderFunc) Raise(event Event) { f(event) }
