package api

import "time"

// TokenPair is the server's answer to a successful register or login.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Transaction mirrors the server's transaction resource.
type Transaction struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	CategoryID *string   `json:"categoryId"`
	Note       string    `json:"note"`
	ReceiptKey *string   `json:"receiptKey,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Budget mirrors the server's budget resource.
type Budget struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Limit     float64   `json:"limit"`
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	Used      float64   `json:"used"`
}

// Settings holds the user's preferences.
type Settings struct {
	Currency string `json:"currency"`
}

// Summary is the home-screen aggregate for the current month.
type Summary struct {
	Income  float64        `json:"income"`
	Expense float64        `json:"expense"`
	Balance float64        `json:"balance"`
	Recent  []*Transaction `json:"recent"`
}
