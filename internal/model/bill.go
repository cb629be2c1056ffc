package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// Bill is a recurring or one-off obligation. IsPaid is toggled
// independently of the other fields via the pay endpoint.
type Bill struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	DueDate   string          `json:"due_date" gorm:"size:10;not null;index"`
	Type      string          `json:"type" gorm:"size:50"`
	Reminder  bool            `json:"reminder" gorm:"default:false"`
	IsPaid    bool            `json:"is_paid" gorm:"default:false;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (b *Bill) SetID(id uint)        { b.ID = id }
func (b *Bill) SetOwner(userID uint) { b.UserID = userID }

// Validate checks field constraints before persistence.
func (b *Bill) Validate() error {
	if b.Name == "" {
		return errors.ErrEmptyName
	}
	if b.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if !ValidDate(b.DueDate) {
		return errors.ErrInvalidDate
	}
	return nil
}
