package todo

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// List is a named collection of items owned by one user. It is the only
// place item membership changes, which keeps each item's list reference in
// step with the list's contents.
type List struct {
	id          int64
	userID      int64
	name        string
	description string
	items       []*Item
	createdAt   time.Time
	updatedAt   time.Time
}

// NewList validates the fields and returns an empty, unowned, unsaved list.
func NewList(name, description string) (*List, error) {
	errs := fieldErrors{}
	errs.check("name", checkListName(name))
	errs.check("description", checkDescription(description))
	if err := errs.err(); err != nil {
		return nil, err
	}

	ts := now()
	return &List{
		name:        name,
		description: description,
		createdAt:   ts,
		updatedAt:   ts,
	}, nil
}

func (l *List) ID() int64 { return l.id }
func (l *List) UserID() int64 { return l.userID }
func (l *List) Name() string { return l.name }
func (l *List) Description() string { return l.description }
func (l *List) CreatedAt() time.Time { return l.createdAt }
func (l *List) UpdatedAt() time.Time { return l.updatedAt }

// OwnedBy reports whether userID owns the list.
func (l *List) OwnedBy(userID int64) bool {
	return l.userID != 0 && l.userID == userID
}

// SetName replaces the name. Blank names and names longer than
// MaxListNameLength characters are rejected.
func (l *List) SetName(name string) error {
	if err := singleField("name", checkListName(name)); err != nil {
		return err
	}
	l.name = name
	l.touch()
	return nil
}

// SetDescription replaces the description.
func (l *List) SetDescription(description string) error {
	if err := singleField("description", checkDescription(description)); err != nil {
		return err
	}
	l.description = description
	l.touch()
	return nil
}

// AddItem puts item in the list and points the item at it. Adding an item
// that is already a member only refreshes its references. An item that
// belongs to another list must be removed from it first.
func (l *List) AddItem(item *Item) error {
	if item == nil {
		return domain.NewValidationError("item", domain.MsgRequired)
	}
	if item.attached() && !item.heldBy(l) {
		return fmt.Errorf("item %d already belongs to another list: %w", item.id, domain.ErrConflict)
	}

	if l.indexOf(item) < 0 {
		l.items = append(l.items, item)
	}
	item.attach(l)
	l.touch()
	return nil
}

// RemoveItem takes item out of the list and clears its list reference.
// Removing an item the list does not hold is rejected with
// domain.ErrConflict.
func (l *List) RemoveItem(item *Item) error {
	if item == nil {
		return domain.NewValidationError("item", domain.MsgRequired)
	}

	idx := l.indexOf(item)
	if idx < 0 && !item.heldBy(l) {
		return fmt.Errorf("item %d is not in list %d: %w", item.id, l.id, domain.ErrConflict)
	}
	if idx >= 0 {
		l.items = append(l.items[:idx], l.items[idx+1:]...)
	}
	item.detach()
	l.touch()
	return nil
}

// Items returns the members in insertion order. The slice is a copy; the
// items are not.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the member with the given id.
func (l *List) Item(id int64) (*Item, bool) {
	for _, it := range l.items {
		if it.id == id {
			return it, true
		}
	}
	return nil, false
}

// TotalItemsCount is the number of members.
func (l *List) TotalItemsCount() int {
	return len(l.items)
}

// CompletedItemsCount is the number of completed members.
func (l *List) CompletedItemsCount() int {
	n := 0
	for _, it := range l.items {
		if it.completed {
			n++
		}
	}
	return n
}

// AttachOwner records userID as the list owner and propagates it to the
// members. Moving a list between users is not supported: a list that
// already has a different owner is rejected with domain.ErrConflict.
func (l *List) AttachOwner(userID int64) error {
	if l.userID != 0 && l.userID != userID {
		return fmt.Errorf("list %d is owned by another user: %w", l.id, domain.ErrConflict)
	}
	l.userID = userID
	for _, it := range l.items {
		it.ownerID = userID
	}
	l.touch()
	return nil
}

// DetachOwner clears the owner reference.
func (l *List) DetachOwner() {
	l.userID = 0
	for _, it := range l.items {
		it.ownerID = 0
	}
	l.touch()
}

// AssignID records the store-assigned identity of a new list and re-points
// the members at it. It has no effect once the list has an id.
func (l *List) AssignID(id int64) {
	if l.id != 0 {
		return
	}
	l.id = id
	for _, it := range l.items {
		it.listID = id
	}
}

func (l *List) indexOf(item *Item) int {
	for i, it := range l.items {
		if sameItem(it, item) {
			return i
		}
	}
	return -1
}

func (l *List) touch() {
	ts := now()
	if ts.Before(l.updatedAt) {
		ts = l.updatedAt
	}
	l.updatedAt = ts
}

// ListSnapshot is the flat persisted form of a List, without its items.
type ListSnapshot struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot returns the list's own fields.
func (l *List) Snapshot() ListSnapshot {
	return ListSnapshot{
		ID:          l.id,
		UserID:      l.userID,
		Name:        l.name,
		Description: l.description,
		CreatedAt:   l.createdAt,
		UpdatedAt:   l.updatedAt,
	}
}

// RestoreList rebuilds a list and its members from stored state. Member
// references are re-pointed at the list.
func RestoreList(s ListSnapshot, items []*Item) *List {
	l := &List{
		id:          s.ID,
		userID:      s.UserID,
		name:        s.Name,
		description: s.Description,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
	for _, it := range items {
		if it == nil || l.indexOf(it) >= 0 {
			continue
		}
		it.attach(l)
		l.items = append(l.items, it)
	}
	return l
}
