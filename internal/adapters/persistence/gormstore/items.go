package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

var _ ports.TodoItemRepository = (*TodoItemRepository)(nil)

// TodoItemRepository implements ports.TodoItemRepository.
type TodoItemRepository struct {
	store *Store
}

// NewTodoItemRepository creates a TodoItemRepository on s.
func NewTodoItemRepository(s *Store) *TodoItemRepository {
	return &TodoItemRepository{store: s}
}

// FindByID loads the item and resolves its owner through its list.
func (r *TodoItemRepository) FindByID(ctx context.Context, id int64) (*todo.Item, error) {
	db := r.store.conn(ctx)

	var rec itemRecord
	if err := db.Take(&rec, id).Error; err != nil {
		return nil, notFound(err, "todo item", id)
	}
	owner, err := listOwner(db, rec.ListID)
	if err != nil {
		return nil, err
	}
	return rec.toDomain(owner), nil
}

func (r *TodoItemRepository) FindByListID(ctx context.Context, listID int64) ([]*todo.Item, error) {
	db := r.store.conn(ctx)

	var recs []itemRecord
	if err := db.Where("list_id = ?", listID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []*todo.Item{}, nil
	}
	owner, err := listOwner(db, listID)
	if err != nil {
		return nil, err
	}
	return restoreItems(recs, owner), nil
}

func (r *TodoItemRepository) Save(ctx context.Context, it *todo.Item) (*todo.Item, error) {
	if it.ListID() == 0 {
		return nil, domain.NewValidationError("list_id", domain.MsgRequired)
	}
	rec := itemToRecord(it)
	db := r.store.conn(ctx)

	if rec.ID == 0 {
		if err := db.Create(&rec).Error; err != nil {
			return nil, translate(err)
		}
		it.AssignID(rec.ID)
		return it, nil
	}

	res := db.Model(&itemRecord{ID: rec.ID}).Select("*").Omit("id", "created_at").Updates(&rec)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "todo item", rec.ID)
	}
	return it, nil
}

func (r *TodoItemRepository) Delete(ctx context.Context, it *todo.Item) error {
	res := r.store.conn(ctx).Delete(&itemRecord{}, it.ID())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "todo item", it.ID())
	}
	return nil
}

// listOwner returns the user id of the list, or 0 for an orphaned item.
func listOwner(db *gorm.DB, listID int64) (int64, error) {
	var rec listRecord
	err := db.Select("user_id").Take(&rec, listID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.UserID, nil
}
