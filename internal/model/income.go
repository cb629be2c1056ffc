package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// Income is a single earning record.
type Income struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date      string          `json:"date" gorm:"size:10;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName avoids GORM pluralizing to "incomes".
func (Income) TableName() string { return "income" }

func (i *Income) SetID(id uint)        { i.ID = id }
func (i *Income) SetOwner(userID uint) { i.UserID = userID }

// Validate checks field constraints before persistence.
func (i *Income) Validate() error {
	if i.Name == "" {
		return errors.ErrEmptyName
	}
	if i.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if !ValidDate(i.Date) {
		return errors.ErrInvalidDate
	}
	return nil
}
