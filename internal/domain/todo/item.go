package todo

import (
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// Item is a single task inside a List. Its list and owner references are
// maintained by List.AddItem and List.RemoveItem. While a list holds the
// item in memory, holder points at that list, so membership is known even
// before the list has an id.
type Item struct {
	id          int64
	listID      int64
	holder      *List
	ownerID     int64
	title       string
	description string
	completed   bool
	priority    Priority
	dueDate     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem validates the fields and returns an incomplete, unsaved item.
// A zero priority defaults to PriorityMedium.
func NewItem(title, description string, priority Priority, dueDate *time.Time) (*Item, error) {
	errs := fieldErrors{}
	errs.check("title", checkTitle(title))
	errs.check("description", checkDescription(description))
	errs.check("priority", checkPriority(priority))
	if err := errs.err(); err != nil {
		return nil, err
	}

	if priority == "" {
		priority = PriorityMedium
	}
	ts := now()
	return &Item{
		title:       title,
		description: description,
		priority:    priority,
		dueDate:     copyTime(dueDate),
		createdAt:   ts,
		updatedAt:   ts,
	}, nil
}

func (i *Item) ID() int64 { return i.id }
func (i *Item) ListID() int64 { return i.listID }
func (i *Item) OwnerID() int64 { return i.ownerID }
func (i *Item) Title() string { return i.title }
func (i *Item) Description() string { return i.description }
func (i *Item) Completed() bool { return i.completed }
func (i *Item) Priority() Priority { return i.priority }
func (i *Item) DueDate() *time.Time { return copyTime(i.dueDate) }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
func (i *Item) BelongsTo(listID int64) bool { return i.listID != 0 && i.listID == listID }

// SetTitle replaces the title. Blank titles and titles longer than
// MaxTitleLength characters are rejected.
func (i *Item) SetTitle(title string) error {
	if err := singleField("title", checkTitle(title)); err != nil {
		return err
	}
	i.title = title
	i.touch()
	return nil
}

// SetDescription replaces the description. Empty clears it.
func (i *Item) SetDescription(description string) error {
	if err := singleField("description", checkDescription(description)); err != nil {
		return err
	}
	i.description = description
	i.touch()
	return nil
}

// SetDueDate replaces the due date; nil clears it.
func (i *Item) SetDueDate(due *time.Time) {
	i.dueDate = copyTime(due)
	i.touch()
}

// SetPriority replaces the priority. The zero value resets to PriorityMedium.
func (i *Item) SetPriority(p Priority) error {
	if err := singleField("priority", checkPriority(p)); err != nil {
		return err
	}
	if p == "" {
		p = PriorityMedium
	}
	i.priority = p
	i.touch()
	return nil
}

// MarkCompleted moves the item to the completed state and raises an
// ItemCompletedEvent on rec. Completing an already completed item changes
// nothing and raises nothing.
func (i *Item) MarkCompleted(rec domain.EventRecorder) {
	if i.completed {
		return
	}
	i.completed = true
	i.touch()
	if rec != nil {
		rec.Raise(newItemCompletedEvent(i, i.updatedAt))
	}
}

// MarkIncomplete reopens the item. No event is raised.
func (i *Item) MarkIncomplete() {
	if !i.completed {
		return
	}
	i.completed = false
	i.touch()
}

// AssignID records the store-assigned identity of a new item. It has no
// effect once the item has an id.
func (i *Item) AssignID(id int64) {
	if i.id == 0 {
		i.id = id
	}
}

func (i *Item) attach(l *List) {
	i.holder = l
	i.listID = l.id
	i.ownerID = l.userID
}

func (i *Item) detach() {
	i.holder = nil
	i.listID = 0
	i.ownerID = 0
}

// heldBy reports whether l is the item's list. Two copies of the same
// persisted list count as one. Without an in-memory holder the stored list
// id decides, which only a persisted list can match.
func (i *Item) heldBy(l *List) bool {
	if i.holder != nil {
		return i.holder == l || (l.id != 0 && i.holder.id == l.id)
	}
	return l.id != 0 && i.listID == l.id
}

// attached reports whether the item belongs to any list.
func (i *Item) attached() bool {
	return i.holder != nil || i.listID != 0
}

// touch refreshes updatedAt without ever moving it backwards.
func (i *Item) touch() {
	ts := now()
	if ts.Before(i.updatedAt) {
		ts = i.updatedAt
	}
	i.updatedAt = ts
}

// sameItem reports whether a and b denote the same item: the same pointer,
// or the same persisted id.
func sameItem(a, b *Item) bool {
	return a == b || (a.id != 0 && a.id == b.id)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// ItemSnapshot is the flat persisted form of an Item.
type ItemSnapshot struct {
	ID          int64
	ListID      int64
	OwnerID     int64
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot returns the item's current state.
func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:          i.id,
		ListID:      i.listID,
		OwnerID:     i.ownerID,
		Title:       i.title,
		Description: i.description,
		Completed:   i.completed,
		Priority:    i.priority,
		DueDate:     copyTime(i.dueDate),
		CreatedAt:   i.createdAt,
		UpdatedAt:   i.updatedAt,
	}
}

// RestoreItem rebuilds an item from stored state without re-running
// validation. Repositories are the only intended callers.
func RestoreItem(s ItemSnapshot) *Item {
	p := s.Priority
	if !p.IsValid() {
		p = PriorityMedium
	}
	return &Item{
		id:          s.ID,
		listID:      s.ListID,
		ownerID:     s.OwnerID,
		title:       s.Title,
		description: s.Description,
		completed:   s.Completed,
		priority:    p,
		dueDate:     copyTime(s.DueDate),
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}
