package model

import "time"

// User represents an authenticated user in the system.
//
// IsPremium is a locally cached view of the billing authority's state;
// it is reconciled on every profile read and may lag briefly behind
// the authority (eventual consistency).
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName       string    `json:"full_name" gorm:"size:255"`
	JobDescription string    `json:"job_description" gorm:"type:text"`
	IsPremium      bool      `json:"is_premium" gorm:"default:false;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	LastLogin      time.Time `json:"last_login"`
}
