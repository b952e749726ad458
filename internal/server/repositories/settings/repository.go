// Package settings declares the repository contract for per-user
// preferences.
package settings

import (
	"context"

	"github.com/ezilbeari/pennywise/internal/server/models"
)

// Repository defines persistence operations for user settings.
type Repository interface {
	// Get returns the user's settings, or defaults when none are stored.
	Get(ctx context.Context, userID string) (*models.Settings, error)

	// Upsert stores the user's settings, overwriting any previous row.
	Upsert(ctx context.Context, s *models.Settings) error
}
