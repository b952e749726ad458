// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token refresh, logout, and
// profile/password updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/auth"
	"github.com/ezilbeari/pennywise/internal/server/config"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// TokenPair bundles a short-lived access token and a long-lived refresh
// token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
//   - Register: create users and mint tokens
//   - Login: verify credentials and mint tokens
//   - Refresh: mint new access tokens against a stored refresh token
//   - Logout: revoke a refresh token
//   - UpdateProfile: profile/password updates with revoke-all on password change
//
// A refresh token is honored only while both its signature is valid AND its
// row exists; the access secret and refresh secret are independent.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	refreshTokensPerUser         int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		accessSecret:                 []byte(cfg.AccessSecretKey),
		refreshSecret:                []byte(cfg.RefreshSecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		refreshTokensPerUser:         cfg.RefreshTokensPerUser,
	}
}

// Register creates a new user and returns a fresh token pair. The user row
// and the refresh-token row are written in one transaction, so a client
// never receives a refresh token that is absent from the store.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*TokenPair, error) {
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: normalizeEmail(email), Name: name, PasswordHash: string(hash)}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return err
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, created.ID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Login verifies the credentials and, on success, returns a new token pair.
// Unknown email and wrong password are indistinguishable to the caller.
// Existing refresh tokens are kept (multi-device), but rows beyond the
// configured per-user cap are evicted, oldest first.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user.ID, tx)
		if genErr != nil {
			return genErr
		}
		return s.repomanager.RefreshTokens(tx).TrimForUser(ctx, user.ID, s.refreshTokensPerUser)
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh validates a refresh token and mints a new access token. The
// refresh token itself is not rotated. A token with a broken signature or
// past expiry yields ErrInvalidToken; a well-formed token without a live
// row yields ErrTokenRevoked.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", common.ErrorValidation
	}

	userID, err := auth.GetUserIDFromToken(refreshToken, s.refreshSecret)
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if _, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrTokenRevoked
		}
		return "", common.ErrorInternal
	}

	access, err := auth.GenerateToken(userID, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return access, nil
}

// Logout revokes the given refresh token. It is idempotent: an empty token
// or a token that was never (or is no longer) stored is treated as success.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// UpdateProfile updates name/email and optionally the password. A password
// change requires the current password and revokes every refresh token for
// the user in the same transaction as the hash write, so a concurrent
// refresh cannot be honored across the change.
func (s *UserService) UpdateProfile(ctx context.Context, userID, email, name, currentPassword, newPassword string) error {
	if email == "" {
		return common.ErrorValidation
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	email = normalizeEmail(email)

	if newPassword == "" {
		return s.repomanager.Users(s.db).UpdateProfile(ctx, userID, email, name)
	}

	if currentPassword == "" {
		return common.ErrorValidation
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return common.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return common.ErrorInternal
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("error revoking refresh tokens: %w", err)
		}
		if err := s.repomanager.Users(tx).UpdatePassword(ctx, userID, string(hash)); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}
		return s.repomanager.Users(tx).UpdateProfile(ctx, userID, email, name)
	})
}

// VerifyAccessToken checks the access token's signature and expiry and
// returns the embedded user id. No storage lookup happens here: access
// tokens stay valid until natural expiry even after logout.
func (s *UserService) VerifyAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.accessSecret)
}

// --- helpers below ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(userID, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
