package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-todolist-service/internal/app/context"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that TodoItemService implements ports.TodoItemService.
var _ ports.TodoItemService = (*TodoItemService)(nil)

// TodoItemService implements ports.TodoItemService. Completing an item
// publishes a todo.ItemCompletedEvent after the change is stored.
type TodoItemService struct {
	uow   unitOfWork
	lists ports.TodoListRepository
	items ports.TodoItemRepository
}

// NewTodoItemService creates a TodoItemService. A nil logger discards
// output.
func NewTodoItemService(
	tx ports.Transactor,
	lists ports.TodoListRepository,
	items ports.TodoItemRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *TodoItemService {
	return &TodoItemService{
		uow:   newUnitOfWork(tx, publisher, logger),
		lists: lists,
		items: items,
	}
}

// ListTodoItems returns the items of one of the caller's lists.
func (s *TodoItemService) ListTodoItems(ctx context.Context, userID, listID int64) ([]*todo.Item, error) {
	s.uow.logger.InfoContext(ctx, "listing todo items", slog.Int64("list_id", listID))

	list, err := ownedList(appctx.New(ctx), s.lists, userID, listID)
	if err != nil {
		s.uow.logFailure(ctx, "ListTodoItems", err, slog.Int64("user_id", userID), slog.Int64("list_id", listID))
		return nil, err
	}
	return list.Items(), nil
}

// GetTodoItem returns a single item.
func (s *TodoItemService) GetTodoItem(ctx context.Context, userID, listID, itemID int64) (*todo.Item, error) {
	s.uow.logger.InfoContext(ctx, "fetching todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	_, item, err := ownedItem(appctx.New(ctx), s.lists, s.items, userID, listID, itemID)
	if err != nil {
		s.uow.logFailure(ctx, "GetTodoItem", err,
			slog.Int64("user_id", userID),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
		)
		return nil, err
	}
	return item, nil
}

// CreateTodoItem adds a new item to one of the caller's lists.
func (s *TodoItemService) CreateTodoItem(ctx context.Context, userID, listID int64, in ports.ItemInput) (*todo.Item, error) {
	s.uow.logger.InfoContext(ctx, "creating todo item", slog.Int64("list_id", listID))

	var created *todo.Item
	err := s.uow.run(ctx, "CreateTodoItem", func(rc *appctx.RequestContext) error {
		list, err := ownedList(rc, s.lists, userID, listID)
		if err != nil {
			return err
		}

		priority, err := todo.ParsePriority(in.Priority)
		if err != nil {
			return err
		}
		item, err := todo.NewItem(in.Title, in.Description, priority, in.DueDate)
		if err != nil {
			return err
		}
		if err := list.AddItem(item); err != nil {
			return err
		}

		// Stored before completion so the event carries the new id.
		if err := rc.Execute(saveItemAction(s.items, item)); err != nil {
			return err
		}
		if in.Completed != nil && *in.Completed {
			item.MarkCompleted(rc)
			if err := rc.Stage(itemKey(item.ID()), item, saveItemAction(s.items, item)); err != nil {
				return err
			}
		}

		created = item
		return rc.Stage(listKey(listID), list, saveListAction(s.lists, list))
	})
	if err != nil {
		s.uow.logFailure(ctx, "CreateTodoItem", err, slog.Int64("user_id", userID), slog.Int64("list_id", listID))
		return nil, err
	}
	return created, nil
}

// UpdateTodoItem replaces the item's fields and applies any completion
// change.
func (s *TodoItemService) UpdateTodoItem(ctx context.Context, userID, listID, itemID int64, in ports.ItemInput) (*todo.Item, error) {
	s.uow.logger.InfoContext(ctx, "updating todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	var updated *todo.Item
	err := s.uow.run(ctx, "UpdateTodoItem", func(rc *appctx.RequestContext) error {
		_, item, err := ownedItem(rc, s.lists, s.items, userID, listID, itemID)
		if err != nil {
			return err
		}
		if err := applyItemInput(rc, item, in); err != nil {
			return err
		}

		updated = item
		return rc.Stage(itemKey(itemID), item, saveItemAction(s.items, item))
	})
	if err != nil {
		s.uow.logFailure(ctx, "UpdateTodoItem", err,
			slog.Int64("user_id", userID),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTodoItem removes an item from its list.
func (s *TodoItemService) DeleteTodoItem(ctx context.Context, userID, listID, itemID int64) error {
	s.uow.logger.InfoContext(ctx, "deleting todo item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", itemID),
	)

	err := s.uow.run(ctx, "DeleteTodoItem", func(rc *appctx.RequestContext) error {
		list, item, err := ownedItem(rc, s.lists, s.items, userID, listID, itemID)
		if err != nil {
			return err
		}

		del := deleteItemAction(s.items, item)
		if err := list.RemoveItem(item); err != nil {
			return err
		}
		if err := rc.AddAction(del); err != nil {
			return err
		}
		return rc.Stage(listKey(listID), list, saveListAction(s.lists, list))
	})
	if err != nil {
		s.uow.logFailure(ctx, "DeleteTodoItem", err,
			slog.Int64("user_id", userID),
			slog.Int64("list_id", listID),
			slog.Int64("item_id", itemID),
		)
		return err
	}
	return nil
}

func applyItemInput(rc *appctx.RequestContext, item *todo.Item, in ports.ItemInput) error {
	priority, err := todo.ParsePriority(in.Priority)
	if err != nil {
		return err
	}
	if err := item.SetTitle(in.Title); err != nil {
		return err
	}
	if err := item.SetDescription(in.Description); err != nil {
		return err
	}
	if err := item.SetPriority(priority); err != nil {
		return err
	}
	item.SetDueDate(in.DueDate)

	if in.Completed != nil {
		if *in.Completed {
			item.MarkCompleted(rc)
		} else {
			item.MarkIncomplete()
		}
	}
	return nil
}
