package models

import "time"

// Transaction types.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is a single income or expense record.
type Transaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	CategoryID *string   `json:"categoryId"`
	Note       string    `json:"note"`
	ReceiptKey *string   `json:"receiptKey,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
