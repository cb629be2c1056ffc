package repository

import (
	"context"

	"gorm.io/gorm"

	"trackbudget/internal/model"
)

// BillRepository extends the owned CRUD contract with the paid toggle.
type BillRepository interface {
	OwnedRepository[model.Bill]
	SetPaid(ctx context.Context, userID, id uint, paid bool) error
}

type billRepository struct {
	OwnedRepository[model.Bill]
	db *gorm.DB
}

// NewBillRepository creates a bill repository.
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		OwnedRepository: NewOwned[model.Bill](db, "due_date ASC"),
		db:              db,
	}
}

func (r *billRepository) SetPaid(ctx context.Context, userID, id uint, paid bool) error {
	return r.db.WithContext(ctx).Model(&model.Bill{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_paid", paid).Error
}
