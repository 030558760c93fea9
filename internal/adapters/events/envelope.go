package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// envelope is the wire form of an event sent to external systems.
type envelope struct {
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    domain.Event `json:"payload"`
}

func encode(event domain.Event) ([]byte, error) {
	data, err := json.Marshal(envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    event,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", event.EventName(), err)
	}
	return data, nil
}
