package model

import (
	"time"

	"trackbudget/internal/errors"
)

// CalendarNote is a dated free-text note; many are allowed per day.
type CalendarNote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Date      string    `json:"date" gorm:"size:10;not null;index"`
	Note      string    `json:"note" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *CalendarNote) SetID(id uint)        { n.ID = id }
func (n *CalendarNote) SetOwner(userID uint) { n.UserID = userID }

// Validate checks field constraints before persistence.
func (n *CalendarNote) Validate() error {
	if n.Note == "" {
		return errors.ErrEmptyName
	}
	if !ValidDate(n.Date) {
		return errors.ErrInvalidDate
	}
	return nil
}
