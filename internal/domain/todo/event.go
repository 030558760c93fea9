package todo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// EventItemCompleted is the name of ItemCompletedEvent.
const EventItemCompleted = "todo.item.completed"

var _ domain.Event = ItemCompletedEvent{}

// ItemCompletedEvent records an item moving from incomplete to completed.
// The payload is captured at the moment of the transition.
type ItemCompletedEvent struct {
	ID     uuid.UUID `json:"id"`
	ItemID int64     `json:"item_id"`
	Title  string    `json:"title"`
	ListID int64     `json:"list_id"`
	UserID int64     `json:"user_id"`
	At     time.Time `json:"occurred_at"`
}

func newItemCompletedEvent(it *Item, at time.Time) ItemCompletedEvent {
	return ItemCompletedEvent{
		ID:     uuid.New(),
		ItemID: it.id,
		Title:  it.title,
		ListID: it.listID,
		UserID: it.ownerID,
		At:     at,
	}
}

// EventName implements domain.Event.
func (e ItemCompletedEvent) EventName() string { return EventItemCompleted }

// OccurredAt implements domain.Event.
func (e ItemCompletedEvent) OccurredAt() time.Time { return e.At }
