package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

var _ ports.TodoListRepository = (*TodoListRepository)(nil)

// TodoListRepository implements ports.TodoListRepository.
type TodoListRepository struct {
	store *Store
}

// NewTodoListRepository creates a TodoListRepository on s.
func NewTodoListRepository(s *Store) *TodoListRepository {
	return &TodoListRepository{store: s}
}

func (r *TodoListRepository) FindByID(ctx context.Context, id int64) (*todo.List, error) {
	db := r.store.conn(ctx)

	var rec listRecord
	if err := db.Take(&rec, id).Error; err != nil {
		return nil, notFound(err, "todo list", id)
	}

	var items []itemRecord
	if err := db.Where("list_id = ?", id).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(restoreItems(items, rec.UserID)), nil
}

func (r *TodoListRepository) FindByUserID(ctx context.Context, userID int64) ([]*todo.List, error) {
	db := r.store.conn(ctx)

	var recs []listRecord
	if err := db.Where("user_id = ?", userID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []*todo.List{}, nil
	}

	ids := make([]int64, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	var items []itemRecord
	if err := db.Where("list_id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	byList := make(map[int64][]itemRecord, len(recs))
	for _, it := range items {
		byList[it.ListID] = append(byList[it.ListID], it)
	}

	out := make([]*todo.List, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain(restoreItems(byList[rec.ID], userID))
	}
	return out, nil
}

// Save persists the list's own fields. A list must be owned before it can
// be stored.
func (r *TodoListRepository) Save(ctx context.Context, l *todo.List) (*todo.List, error) {
	if l.UserID() == 0 {
		return nil, domain.NewValidationError("user_id", domain.MsgRequired)
	}
	rec := listToRecord(l)
	db := r.store.conn(ctx)

	if rec.ID == 0 {
		if err := db.Create(&rec).Error; err != nil {
			return nil, translate(err)
		}
		l.AssignID(rec.ID)
		return l, nil
	}

	res := db.Model(&listRecord{ID: rec.ID}).Select("*").Omit("id", "created_at").Updates(&rec)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "todo list", rec.ID)
	}
	return l, nil
}

// Delete removes the list and its items.
func (r *TodoListRepository) Delete(ctx context.Context, l *todo.List) error {
	return r.store.atomic(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", l.ID()).Delete(&itemRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&listRecord{}, l.ID())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "todo list", l.ID())
		}
		return nil
	})
}

func restoreItems(recs []itemRecord, ownerID int64) []*todo.Item {
	items := make([]*todo.Item, len(recs))
	for i, rec := range recs {
		items[i] = rec.toDomain(ownerID)
	}
	return items
}
