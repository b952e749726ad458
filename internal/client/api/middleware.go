package api

import (
	"net/http"

	"github.com/ezilbeari/pennywise/internal/client/session"
	"github.com/ezilbeari/pennywise/internal/common"
)

// Middleware hooks run around every authenticated HTTP call the client makes.
// BeforeRequest may reject the call outright; OnResponse may replace the
// call's outcome after the response (or transport error) arrives.
type Middleware interface {
	BeforeRequest(req *http.Request) error
	OnResponse(resp *http.Response, err error) error
}

// AuthMiddleware enforces the session guard and carries the bearer token.
//
// Outgoing: refuses the call while the guard is locked, otherwise attaches
// the stored access token. Incoming: if the guard locked mid-flight, the
// result is discarded as an auth failure; on a 401 the guard is locked and
// the stored token cleared so concurrent calls fail fast instead of retrying
// with a dead token.
type AuthMiddleware struct {
	guard  *session.Guard
	tokens TokenStore
}

func NewAuthMiddleware(guard *session.Guard, tokens TokenStore) *AuthMiddleware {
	return &AuthMiddleware{guard: guard, tokens: tokens}
}

func (m *AuthMiddleware) BeforeRequest(req *http.Request) error {
	if m.guard.IsLocked() {
		return &AuthLockError{}
	}

	token, err := m.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return nil
}

func (m *AuthMiddleware) OnResponse(resp *http.Response, err error) error {
	if m.guard.IsLocked() {
		return &AuthLockError{}
	}

	if resp != nil && resp.StatusCode == http.StatusUnauthorized {
		m.guard.Lock()
		// Best effort: a failed clear must not keep the lock from taking
		// effect.
		_ = m.tokens.Clear()
	}
	return err
}
