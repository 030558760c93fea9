package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository on s.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var rec userRecord
	if err := r.store.conn(ctx).Take(&rec, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return rec.toDomain(), nil
}

// Save inserts u when it has no id yet and updates it otherwise.
func (r *UserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	rec := userToRecord(u)
	db := r.store.conn(ctx)

	if rec.ID == 0 {
		if err := db.Create(&rec).Error; err != nil {
			return nil, translate(err)
		}
		if err := u.AssignID(rec.ID); err != nil {
			return nil, err
		}
		return u, nil
	}

	res := db.Model(&userRecord{ID: rec.ID}).Select("*").Omit("id", "created_at").Updates(&rec)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(gorm.ErrRecordNotFound, "user", rec.ID)
	}
	return u, nil
}

// Delete removes the user, their lists and the items in them.
func (r *UserRepository) Delete(ctx context.Context, u *user.User) error {
	return r.store.atomic(ctx, func(tx *gorm.DB) error {
		lists := tx.Model(&listRecord{}).Select("id").Where("user_id = ?", u.ID())
		if err := tx.Where("list_id IN (?)", lists).Delete(&itemRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", u.ID()).Delete(&listRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&userRecord{}, u.ID())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "user", u.ID())
		}
		return nil
	})
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.store.conn(ctx).Model(&userRecord{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

// ExistsByEmail compares addresses case-insensitively.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email user.Email) (bool, error) {
	var n int64
	err := r.store.conn(ctx).Model(&userRecord{}).Where("email_key = ?", email.Normalized()).Count(&n).Error
	return n > 0, err
}
