package models

// Settings holds per-user preferences.
type Settings struct {
	UserID   string `json:"-"`
	Currency string `json:"currency"`
}
