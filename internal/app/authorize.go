package app

import (
	"context"
	"fmt"

	appctx "github.com/jsamuelsen11/go-todolist-service/internal/app/context"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// ownedList loads a list and checks that userID owns it.
func ownedList(rc *appctx.RequestContext, lists ports.TodoListRepository, userID, listID int64) (*todo.List, error) {
	list, err := appctx.GetOrFetch(rc, listKey(listID), func(ctx context.Context) (*todo.List, error) {
		return lists.FindByID(ctx, listID)
	})
	if err != nil {
		return nil, err
	}
	if !list.OwnedBy(userID) {
		return nil, fmt.Errorf("todo list %d: %w", listID, domain.ErrForbidden)
	}
	return list, nil
}

// ownedItem resolves an item addressed as listID/itemID. The list is
// checked first, so a caller probing someone else's list learns nothing
// about the items in it. The returned item is the list's own member.
func ownedItem(rc *appctx.RequestContext, lists ports.TodoListRepository, items ports.TodoItemRepository, userID, listID, itemID int64) (*todo.List, *todo.Item, error) {
	list, err := ownedList(rc, lists, userID, listID)
	if err != nil {
		return nil, nil, err
	}

	item, err := appctx.GetOrFetch(rc, itemKey(itemID), func(ctx context.Context) (*todo.Item, error) {
		return items.FindByID(ctx, itemID)
	})
	if err != nil {
		return nil, nil, err
	}
	if item.OwnerID() != userID {
		return nil, nil, fmt.Errorf("todo item %d: %w", itemID, domain.ErrForbidden)
	}
	if !item.BelongsTo(listID) {
		return nil, nil, fmt.Errorf("todo item %d: item does not belong to list %d: %w", itemID, listID, domain.ErrConflict)
	}

	if member, ok := list.Item(itemID); ok {
		item = member
	}
	return list, item, nil
}

func saveListAction(lists ports.TodoListRepository, l *todo.List) domain.Action {
	return appctx.NewAction(fmt.Sprintf("save todo list %d", l.ID()), func(ctx context.Context) error {
		_, err := lists.Save(ctx, l)
		return err
	}, nil)
}

func deleteListAction(lists ports.TodoListRepository, l *todo.List) domain.Action {
	return appctx.NewAction(fmt.Sprintf("delete todo list %d", l.ID()), func(ctx context.Context) error {
		return lists.Delete(ctx, l)
	}, nil)
}

func saveItemAction(items ports.TodoItemRepository, it *todo.Item) domain.Action {
	return appctx.NewAction(fmt.Sprintf("save todo item %d", it.ID()), func(ctx context.Context) error {
		_, err := items.Save(ctx, it)
		return err
	}, nil)
}

func deleteItemAction(items ports.TodoItemRepository, it *todo.Item) domain.Action {
	return appctx.NewAction(fmt.Sprintf("delete todo item %d", it.ID()), func(ctx context.Context) error {
		return items.Delete(ctx, it)
	}, nil)
}
