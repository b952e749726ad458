// Package budgets declares the repository contract for category spending
// limits.
package budgets

import (
	"context"

	"github.com/ezilbeari/pennywise/internal/server/models"
)

// Repository defines persistence operations for budgets. List computes live
// usage by summing matching expense transactions since each budget's start
// date.
type Repository interface {
	// Create inserts a budget and returns it with the generated id.
	Create(ctx context.Context, b *models.Budget) (*models.Budget, error)

	// ListByUser returns the user's budgets with usage, ordered by category
	// name.
	ListByUser(ctx context.Context, userID string) ([]*models.Budget, error)

	// UpdateAmount changes the limit of an owned budget. Returns
	// common.ErrorNotFound when no row matches.
	UpdateAmount(ctx context.Context, userID, budgetID string, amount float64) (*models.Budget, error)

	// Delete removes an owned budget. Returns common.ErrorNotFound when no
	// row matches.
	Delete(ctx context.Context, userID, budgetID string) error

	// ResolveCategory returns the id of the named category, creating it if
	// necessary. Matching is case-insensitive.
	ResolveCategory(ctx context.Context, name string) (string, error)
}
