package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"trackbudget/internal/model"
)

// SavingsRepository extends the owned CRUD contract with the additive
// increment used by the add-funds operation.
type SavingsRepository interface {
	OwnedRepository[model.SavingsBucket]
	// AddFunds applies delta to current_amount as a single additive
	// update so concurrent increments cannot lose each other. The delta
	// may be negative.
	AddFunds(ctx context.Context, userID, id uint, delta decimal.Decimal) error
}

type savingsRepository struct {
	OwnedRepository[model.SavingsBucket]
	db *gorm.DB
}

// NewSavingsRepository creates a savings bucket repository.
func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{
		OwnedRepository: NewOwned[model.SavingsBucket](db, ""),
		db:              db,
	}
}

func (r *savingsRepository) AddFunds(ctx context.Context, userID, id uint, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.SavingsBucket{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("current_amount", gorm.Expr("current_amount + ?", delta)).Error
}
