package gormstore

import (
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
)

// Timestamps come from the aggregates, so gorm's automatic tracking is off.

type userRecord struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:320;not null"`
	EmailKey     string    `gorm:"size:320;not null;uniqueIndex"`
	FirstName    string    `gorm:"size:255"`
	LastName     string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (userRecord) TableName() string { return "users" }

type listRecord struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"not null;index"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (listRecord) TableName() string { return "todo_lists" }

type itemRecord struct {
	ID          int64  `gorm:"primaryKey"`
	ListID      int64  `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"size:1000"`
	Completed   bool   `gorm:"not null"`
	Priority    string `gorm:"size:16;not null"`
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (itemRecord) TableName() string { return "todo_items" }

func userToRecord(u *user.User) userRecord {
	s := u.Snapshot()
	return userRecord{
		ID:           s.ID,
		Username:     s.Username,
		PasswordHash: s.PasswordHash,
		Email:        s.Email,
		EmailKey:     u.Email().Normalized(),
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r userRecord) toDomain() *user.User {
	return user.Restore(user.Snapshot{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	})
}

func listToRecord(l *todo.List) listRecord {
	s := l.Snapshot()
	return listRecord{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r listRecord) toDomain(items []*todo.Item) *todo.List {
	return todo.RestoreList(todo.ListSnapshot{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}, items)
}

func itemToRecord(it *todo.Item) itemRecord {
	s := it.Snapshot()
	return itemRecord{
		ID:          s.ID,
		ListID:      s.ListID,
		Title:       s.Title,
		Description: s.Description,
		Completed:   s.Completed,
		Priority:    string(s.Priority),
		DueDate:     s.DueDate,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r itemRecord) toDomain(ownerID int64) *todo.Item {
	var due *time.Time
	if r.DueDate != nil {
		d := r.DueDate.UTC()
		due = &d
	}
	return todo.RestoreItem(todo.ItemSnapshot{
		ID:          r.ID,
		ListID:      r.ListID,
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    todo.Priority(r.Priority),
		DueDate:     due,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	})
}
