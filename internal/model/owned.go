package model

import "time"

// DateLayout is the wire and storage format for calendar dates.
// Dates are kept as strings so lexicographic order matches
// chronological order.
const DateLayout = "2006-01-02"

// OwnedRecord is implemented by every entity scoped to a single user.
// SetID and SetOwner let the transport layer stamp identity before
// persistence so a client-supplied id or user_id is never trusted.
type OwnedRecord interface {
	SetID(id uint)
	SetOwner(userID uint)
	Validate() error
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
