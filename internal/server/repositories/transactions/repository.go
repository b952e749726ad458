// Package transactions declares the repository contract for income/expense
// records.
package transactions

import (
	"context"
	"time"

	"github.com/ezilbeari/pennywise/internal/server/models"
)

// Repository defines persistence operations for transactions. Every
// operation is scoped to one user; rows belonging to other users are
// invisible.
type Repository interface {
	// Create inserts a transaction and returns it with the generated id
	// and timestamp.
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)

	// ListByUser returns the user's transactions, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error)

	// ListRecentByUser returns up to limit of the user's newest transactions.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)

	// SummarizeSince returns the income and expense totals for the user's
	// transactions occurring at or after since.
	SummarizeSince(ctx context.Context, userID string, since time.Time) (income, expense float64, err error)

	// SetReceiptKey attaches a stored receipt object key to a transaction.
	// Returns common.ErrorNotFound when the transaction is absent or owned
	// by someone else.
	SetReceiptKey(ctx context.Context, userID, transactionID, key string) error
}
