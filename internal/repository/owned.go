package repository

import (
	"context"

	"gorm.io/gorm"
)

// OwnedRepository is the shared persistence contract for entities scoped
// to a single user. Every query carries a mandatory user_id filter, so a
// caller can never read or touch another user's rows: updates and
// deletes targeting a row the caller does not own match zero rows and
// return nil.
type OwnedRepository[T any] interface {
	ListByUser(ctx context.Context, userID uint) ([]T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, userID, id uint, rec *T) error
	Delete(ctx context.Context, userID, id uint) error
}

type ownedRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewOwned builds a GORM-backed repository for one entity table.
// orderBy is the default list ordering ("date DESC", "due_date ASC", ...)
// or empty for insertion order.
func NewOwned[T any](db *gorm.DB, orderBy string) OwnedRepository[T] {
	return &ownedRepository[T]{db: db, orderBy: orderBy}
}

func (r *ownedRepository[T]) ListByUser(ctx context.Context, userID uint) ([]T, error) {
	var rows []T
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if r.orderBy != "" {
		q = q.Order(r.orderBy)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ownedRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update overwrites all mutable fields of the row matching id and
// userID. Identity and creation columns are never touched.
func (r *ownedRepository[T]) Update(ctx context.Context, userID, id uint, rec *T) error {
	return r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(rec).Error
}

func (r *ownedRepository[T]) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(T)).Error
}
