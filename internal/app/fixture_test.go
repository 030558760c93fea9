package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen11/go-todolist-service/internal/app"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/password"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
	"github.com/jsamuelsen11/go-todolist-service/mocks"
)

var errCommitFailed = errors.New("commit failed")

// fixture wires the services to a private in-memory SQLite database.
type fixture struct {
	store *gormstore.Store
	users *gormstore.UserRepository
	lists *gormstore.TodoListRepository
	items *gormstore.TodoItemRepository
	pub   *mocks.MockEventPublisher

	listSvc *app.TodoListService
	itemSvc *app.TodoItemService
	userSvc *app.UserService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := gormstore.Open(gormstore.Options{
		Driver: gormstore.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	f := &fixture{
		store: store,
		users: gormstore.NewUserRepository(store),
		lists: gormstore.NewTodoListRepository(store),
		items: gormstore.NewTodoItemRepository(store),
		pub:   mocks.NewMockEventPublisher(t),
	}
	f.listSvc = app.NewTodoListService(store, f.users, f.lists, f.pub, discardLogger())
	f.itemSvc = app.NewTodoItemService(store, f.lists, f.items, f.pub, discardLogger())
	f.userSvc = app.NewUserService(store, f.users, password.NewHasher(bcrypt.MinCost), discardLogger())
	return f
}

// rollbackTransactor runs fn in a real transaction and then reports a
// failure, as if the commit had been rejected.
type rollbackTransactor struct {
	store *gormstore.Store
}

func (r rollbackTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := r.store.WithinTransaction(ctx, fn); err != nil {
		return err
	}
	return errCommitFailed
}

var _ ports.Transactor = rollbackTransactor{}

func (f *fixture) register(t *testing.T, username string) *user.User {
	t.Helper()

	u, err := f.userSvc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Password: "s3cret!",
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("Register(%s) error: %v", username, err)
	}
	return u
}

func (f *fixture) createList(t *testing.T, owner *user.User, name string) *todo.List {
	t.Helper()

	l, err := f.listSvc.CreateTodoList(context.Background(), owner.ID(), ports.ListInput{Name: name})
	if err != nil {
		t.Fatalf("CreateTodoList(%s) error: %v", name, err)
	}
	return l
}

func (f *fixture) createItem(t *testing.T, owner *user.User, l *todo.List, title string) *todo.Item {
	t.Helper()

	it, err := f.itemSvc.CreateTodoItem(context.Background(), owner.ID(), l.ID(), ports.ItemInput{
		Title:    title,
		Priority: "LOW",
	})
	if err != nil {
		t.Fatalf("CreateTodoItem(%s) error: %v", title, err)
	}
	return it
}

func ptr[T any](v T) *T { return &v }
