package api

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthLockError is returned when a call is refused or discarded because the
// session guard is locked. Callers use it to suppress noisy warnings during
// teardown.
type AuthLockError struct{}

func (e *AuthLockError) Error() string {
	return "auth locked during logout"
}

// HTTPError is a non-2xx response from the server, decided once at the
// client boundary and propagated as a value.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsAuthError reports whether err is auth-class: either the guard lock
// fired, or the server answered 401.
func IsAuthError(err error) bool {
	var lockErr *AuthLockError
	if errors.As(err, &lockErr) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized
}
