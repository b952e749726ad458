// Package users declares the server-side repository contract for account
// records.
package users

import (
	"context"

	"github.com/ezilbeari/pennywise/internal/server/models"
)

// Repository defines persistence operations for users. Emails are stored
// lower-cased; lookups expect the caller to normalize first.
type Repository interface {
	// Create inserts a new user and returns it with the generated id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given normalized email,
	// or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateProfile sets email and name. Returns common.ErrorNotFound when
	// no row matches id.
	UpdateProfile(ctx context.Context, id, email, name string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
