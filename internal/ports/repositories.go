package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
)

// UserRepository is the persistence gateway for users.
// Lookups of a missing id return a *domain.NotFoundError.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// Save inserts a new user (assigning its id) or updates an existing one.
	// A duplicate username or email returns domain.ErrConflict.
	Save(ctx context.Context, u *user.User) (*user.User, error)

	// Delete removes the user together with its lists and their items.
	Delete(ctx context.Context, u *user.User) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email user.Email) (bool, error)
}

// TodoListRepository is the persistence gateway for todo lists.
type TodoListRepository interface {
	// FindByID returns the list with its items loaded.
	FindByID(ctx context.Context, id int64) (*todo.List, error)

	// FindByUserID returns the user's lists, with items, oldest first.
	FindByUserID(ctx context.Context, userID int64) ([]*todo.List, error)

	// Save persists the list's own fields. Items are saved through
	// TodoItemRepository.
	Save(ctx context.Context, l *todo.List) (*todo.List, error)

	// Delete removes the list and all of its items.
	Delete(ctx context.Context, l *todo.List) error
}

// TodoItemRepository is the persistence gateway for todo items.
type TodoItemRepository interface {
	// FindByID returns the item with its list id and owning user id set.
	FindByID(ctx context.Context, id int64) (*todo.Item, error)

	FindByListID(ctx context.Context, listID int64) ([]*todo.Item, error)

	// Save persists an item attached to a list. Saving a detached item
	// returns domain.ErrValidation.
	Save(ctx context.Context, it *todo.Item) (*todo.Item, error)

	Delete(ctx context.Context, it *todo.Item) error
}

// Transactor runs fn inside one store transaction. The context passed to fn
// carries the transaction; repositories called with it join it. fn's error
// rolls the transaction back and is returned unchanged.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
