// Package services contains application services for the Pennywise client.
// This file defines the authentication service: session establishment,
// refresh, and logout against the backend, coordinated with the local
// session guard and token store.
package services

import (
	"context"
	"fmt"

	"github.com/ezilbeari/pennywise/internal/client/api"
	"github.com/ezilbeari/pennywise/internal/client/session"
)

// apiClient is the slice of the HTTP client the auth service needs.
// The real api.Client satisfies it; tests can provide a stub.
type apiClient interface {
	Register(ctx context.Context, email, password, name string) (*api.TokenPair, error)
	Login(ctx context.Context, email, password string) (*api.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AuthService defines session-lifecycle operations for the CLI.
//
// Contract:
//   - Register/Login: establish a new session; the access token is stored
//     durably before the session guard is unlocked.
//   - Refresh: exchange the held refresh token for a new access token.
//   - Logout: lock the guard, revoke the refresh token server-side
//     (best effort), and clear local state.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

type authService struct {
	client apiClient
	guard  *session.Guard
	tokens api.TokenStore

	// refreshToken is held in memory only. It is needed for Refresh and the
	// server-side revocation on Logout, and deliberately never persisted.
	refreshToken string
}

// NewAuthService constructs an AuthService bound to the given API client,
// session guard, and token store.
func NewAuthService(client apiClient, guard *session.Guard, tokens api.TokenStore) AuthService {
	return &authService{client: client, guard: guard, tokens: tokens}
}

// establishSession stores the new access token and only then unlocks the
// guard. The ordering matters: a call admitted by a freshly-cleared lock
// must never pick up a stale token.
func (a *authService) establishSession(pair *api.TokenPair) error {
	if err := a.tokens.Save(pair.Token); err != nil {
		return fmt.Errorf("token save error: %w", err)
	}
	a.refreshToken = pair.RefreshToken
	a.guard.Unlock()
	return nil
}

func (a *authService) Register(ctx context.Context, email, password, name string) error {
	pair, err := a.client.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	return a.establishSession(pair)
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	pair, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.establishSession(pair)
}

// Refresh exchanges the held refresh token for a new access token. On
// success the session is usable again, so the guard is unlocked after the
// token is stored.
func (a *authService) Refresh(ctx context.Context) error {
	if a.refreshToken == "" {
		return &api.AuthLockError{}
	}

	token, err := a.client.Refresh(ctx, a.refreshToken)
	if err != nil {
		return err
	}

	if err := a.tokens.Save(token); err != nil {
		return fmt.Errorf("token save error: %w", err)
	}
	a.guard.Unlock()
	return nil
}

// Logout locks the guard first so concurrent calls fail fast, then revokes
// the refresh token server-side and clears local state. Revocation and
// clearing are best effort: a dead network must not keep the client logged
// in locally.
func (a *authService) Logout(ctx context.Context) error {
	a.guard.Lock()

	var revokeErr error
	if a.refreshToken != "" {
		revokeErr = a.client.Logout(ctx, a.refreshToken)
	}
	a.refreshToken = ""

	if err := a.tokens.Clear(); err != nil {
		return fmt.Errorf("token clear error: %w", err)
	}
	return revokeErr
}
