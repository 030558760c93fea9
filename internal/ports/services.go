package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
)

// TodoListService defines the service port for todo list use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every call names the authenticated caller. Operations on a single list
// return domain.ErrNotFound when the list does not exist and
// domain.ErrForbidden when it belongs to someone else, in that order.
type TodoListService interface {
	// ListTodoLists returns the caller's lists with their items.
	ListTodoLists(ctx context.Context, userID int64) ([]*todo.List, error)

	GetTodoList(ctx context.Context, userID, listID int64) (*todo.List, error)

	// CreateTodoList creates a list owned by the caller.
	// Returns domain.ErrValidation if the input fails validation.
	CreateTodoList(ctx context.Context, userID int64, in ListInput) (*todo.List, error)

	UpdateTodoList(ctx context.Context, userID, listID int64, in ListInput) (*todo.List, error)

	// DeleteTodoList removes the list and every item in it.
	DeleteTodoList(ctx context.Context, userID, listID int64) error
}

// TodoItemService defines the service port for todo item use cases.
//
// Item operations check, in order: the list exists (domain.ErrNotFound),
// the caller owns it (domain.ErrForbidden), the item exists
// (domain.ErrNotFound), and the item belongs to that list
// (domain.ErrConflict).
type TodoItemService interface {
	ListTodoItems(ctx context.Context, userID, listID int64) ([]*todo.Item, error)

	GetTodoItem(ctx context.Context, userID, listID, itemID int64) (*todo.Item, error)

	// CreateTodoItem adds an item to the list. When in.Completed is true the
	// item is stored first and then completed, so the completion event
	// carries its id.
	CreateTodoItem(ctx context.Context, userID, listID int64, in ItemInput) (*todo.Item, error)

	// UpdateTodoItem replaces the item's fields. A nil in.Completed leaves
	// the completion state alone.
	UpdateTodoItem(ctx context.Context, userID, listID, itemID int64, in ItemInput) (*todo.Item, error)

	DeleteTodoItem(ctx context.Context, userID, listID, itemID int64) error
}

// UserService defines the service port for account use cases.
type UserService interface {
	// Register creates an account. A taken username or email returns
	// domain.ErrConflict.
	Register(ctx context.Context, in RegisterInput) (*user.User, error)

	GetUser(ctx context.Context, userID int64) (*user.User, error)

	// DeleteUser removes the account with all of its lists and items.
	DeleteUser(ctx context.Context, userID int64) error
}

// ListInput carries the writable fields of a todo list.
type ListInput struct {
	Name        string
	Description string
}

// ItemInput carries the writable fields of a todo item. Priority is parsed
// with todo.ParsePriority, so an empty value means MEDIUM.
type ItemInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Completed   *bool
}

// RegisterInput carries a new account's details. Password is the raw
// password; it is hashed before it is stored.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}
