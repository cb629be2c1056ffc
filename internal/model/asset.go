package model

import (
	"time"

	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
)

// Asset is a thing of value counted toward net worth.
type Asset struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Worth     decimal.Decimal `json:"worth" gorm:"type:decimal(20,2);not null"`
	Type      string          `json:"type" gorm:"size:50"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *Asset) SetID(id uint)        { a.ID = id }
func (a *Asset) SetOwner(userID uint) { a.UserID = userID }

// Validate checks field constraints before persistence.
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.ErrEmptyName
	}
	if a.Worth.IsNegative() {
		return errors.ErrInvalidAmount
	}
	return nil
}
