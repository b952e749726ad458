// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"

	"github.com/ezilbeari/pennywise/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// refresh tokens. Revocation is row deletion: a token without a row is dead
// no matter what its signature says.
type Repository interface {
	// Create stores a new refresh token for userID.
	Create(ctx context.Context, userID string, token string) error

	// Find looks up a refresh token by its opaque token string and returns
	// its metadata. Implementations return common.ErrorNotFound when the
	// token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a
	// non-existent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteAllForUser removes every refresh token belonging to userID.
	DeleteAllForUser(ctx context.Context, userID string) error

	// TrimForUser keeps only the keep newest tokens for userID and deletes
	// the rest.
	TrimForUser(ctx context.Context, userID string, keep int) error
}
