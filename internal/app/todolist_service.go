package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-todolist-service/internal/app/context"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that TodoListService implements ports.TodoListService.
var _ ports.TodoListService = (*TodoListService)(nil)

// TodoListService implements ports.TodoListService.
type TodoListService struct {
	uow   unitOfWork
	users ports.UserRepository
	lists ports.TodoListRepository
}

// NewTodoListService creates a TodoListService. A nil logger discards
// output.
func NewTodoListService(
	tx ports.Transactor,
	users ports.UserRepository,
	lists ports.TodoListRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *TodoListService {
	return &TodoListService{
		uow:   newUnitOfWork(tx, publisher, logger),
		users: users,
		lists: lists,
	}
}

// ListTodoLists returns the caller's lists.
func (s *TodoListService) ListTodoLists(ctx context.Context, userID int64) ([]*todo.List, error) {
	s.uow.logger.InfoContext(ctx, "listing todo lists", slog.Int64("user_id", userID))

	lists, err := s.lists.FindByUserID(ctx, userID)
	if err != nil {
		s.uow.logFailure(ctx, "ListTodoLists", err, slog.Int64("user_id", userID))
		return nil, err
	}
	return lists, nil
}

// GetTodoList returns one of the caller's lists with its items.
func (s *TodoListService) GetTodoList(ctx context.Context, userID, listID int64) (*todo.List, error) {
	s.uow.logger.InfoContext(ctx, "fetching todo list", slog.Int64("list_id", listID))

	list, err := ownedList(appctx.New(ctx), s.lists, userID, listID)
	if err != nil {
		s.uow.logFailure(ctx, "GetTodoList", err, slog.Int64("user_id", userID), slog.Int64("list_id", listID))
		return nil, err
	}
	return list, nil
}

// CreateTodoList validates the input and creates a list owned by the caller.
func (s *TodoListService) CreateTodoList(ctx context.Context, userID int64, in ports.ListInput) (*todo.List, error) {
	s.uow.logger.InfoContext(ctx, "creating todo list", slog.Int64("user_id", userID))

	var created *todo.List
	err := s.uow.run(ctx, "CreateTodoList", func(rc *appctx.RequestContext) error {
		owner, err := appctx.GetOrFetch(rc, userKey(userID), func(ctx context.Context) (*user.User, error) {
			return s.users.FindByID(ctx, userID)
		})
		if err != nil {
			return err
		}

		list, err := todo.NewList(in.Name, in.Description)
		if err != nil {
			return err
		}
		if err := owner.AddList(list); err != nil {
			return err
		}

		created = list
		return rc.AddAction(saveListAction(s.lists, list))
	})
	if err != nil {
		s.uow.logFailure(ctx, "CreateTodoList", err, slog.Int64("user_id", userID))
		return nil, err
	}
	return created, nil
}

// UpdateTodoList replaces the list's name and description.
func (s *TodoListService) UpdateTodoList(ctx context.Context, userID, listID int64, in ports.ListInput) (*todo.List, error) {
	s.uow.logger.InfoContext(ctx, "updating todo list", slog.Int64("list_id", listID))

	var updated *todo.List
	err := s.uow.run(ctx, "UpdateTodoList", func(rc *appctx.RequestContext) error {
		list, err := ownedList(rc, s.lists, userID, listID)
		if err != nil {
			return err
		}
		if err := list.SetName(in.Name); err != nil {
			return err
		}
		if err := list.SetDescription(in.Description); err != nil {
			return err
		}

		updated = list
		return rc.Stage(listKey(listID), list, saveListAction(s.lists, list))
	})
	if err != nil {
		s.uow.logFailure(ctx, "UpdateTodoList", err, slog.Int64("user_id", userID), slog.Int64("list_id", listID))
		return nil, err
	}
	return updated, nil
}

// DeleteTodoList removes the list and its items.
func (s *TodoListService) DeleteTodoList(ctx context.Context, userID, listID int64) error {
	s.uow.logger.InfoContext(ctx, "deleting todo list", slog.Int64("list_id", listID))

	err := s.uow.run(ctx, "DeleteTodoList", func(rc *appctx.RequestContext) error {
		list, err := ownedList(rc, s.lists, userID, listID)
		if err != nil {
			return err
		}
		return rc.AddAction(deleteListAction(s.lists, list))
	})
	if err != nil {
		s.uow.logFailure(ctx, "DeleteTodoList", err, slog.Int64("user_id", userID), slog.Int64("list_id", listID))
		return err
	}
	return nil
}
