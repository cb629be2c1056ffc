package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// RetirementPlan holds the single per-user retirement target. Posting a
// plan upserts the one row keyed by user_id.
type RetirementPlan struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	CurrentAge     int             `json:"current_age"`
	RetireAge      int             `json:"retire_age"`
	CurrentSavings decimal.Decimal `json:"current_savings" gorm:"type:decimal(20,2);not null;default:0"`
	RetirementGoal decimal.Decimal `json:"retirement_goal" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate checks field constraints before persistence.
func (p *RetirementPlan) Validate() error {
	if p.CurrentAge < 0 || p.RetireAge < 0 {
		return errors.ErrInvalidAmount
	}
	if p.CurrentSavings.IsNegative() || p.RetirementGoal.IsNegative() {
		return errors.ErrInvalidAmount
	}
	return nil
}

// RetirementContribution is one deposit toward the plan; many per user.
type RetirementContribution struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date      string          `json:"date" gorm:"size:10;not null"`
	Type      string          `json:"type" gorm:"size:50"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (c *RetirementContribution) SetID(id uint)        { c.ID = id }
func (c *RetirementContribution) SetOwner(userID uint) { c.UserID = userID }

// Validate checks field constraints before persistence.
func (c *RetirementContribution) Validate() error {
	if c.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if !ValidDate(c.Date) {
		return errors.ErrInvalidDate
	}
	return nil
}
