package models

import "time"

// RefreshToken is a persisted refresh-token row. A token is honored only
// while its row exists: deleting the row revokes the token regardless of
// its remaining cryptographic validity.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}
