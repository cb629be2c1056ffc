package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// Want/need classification tags for expenses.
const (
	TagWant = "want"
	TagNeed = "need"
)

// Expense is a single spend record.
type Expense struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date       string          `json:"date" gorm:"size:10;not null"`
	WantOrNeed string          `json:"want_or_need" gorm:"size:10"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (e *Expense) SetID(id uint)        { e.ID = id }
func (e *Expense) SetOwner(userID uint) { e.UserID = userID }

// Validate checks field constraints before persistence.
func (e *Expense) Validate() error {
	if e.Name == "" {
		return errors.ErrEmptyName
	}
	if e.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if !ValidDate(e.Date) {
		return errors.ErrInvalidDate
	}
	return nil
}
