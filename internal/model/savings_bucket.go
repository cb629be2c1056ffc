package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// SavingsBucket is a named savings goal. CurrentAmount is mutated both
// by full-record updates and by the additive add-funds operation; the
// delta there may be negative, so no non-negativity is enforced on it.
type SavingsBucket struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:decimal(20,2);not null"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:decimal(20,2);not null;default:0"`
	EndDate       string          `json:"end_date" gorm:"size:10"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (s *SavingsBucket) SetID(id uint)        { s.ID = id }
func (s *SavingsBucket) SetOwner(userID uint) { s.UserID = userID }

// Validate checks field constraints before persistence.
func (s *SavingsBucket) Validate() error {
	if s.Name == "" {
		return errors.ErrEmptyName
	}
	if s.TargetAmount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if s.EndDate != "" && !ValidDate(s.EndDate) {
		return errors.ErrInvalidDate
	}
	return nil
}
