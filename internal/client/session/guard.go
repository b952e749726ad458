// Package session owns the client-side logout lock. While the guard is
// locked, the API layer refuses to originate or complete calls, so a batch
// of in-flight requests cannot race the teardown of a dead session.
package session

import "sync"

// Guard is the session lock. The zero value is unlocked and ready to use.
//
// Lifecycle: unlocked at startup; locked on an authentication failure or
// explicit logout; unlocked only after a new session is established and the
// fresh access token is already stored.
type Guard struct {
	mu     sync.Mutex
	locked bool
}

// Lock puts the guard into the logging-out state. Idempotent.
func (g *Guard) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.locked = true
}

// Unlock clears the logging-out state. Callers must have stored the new
// access token before unlocking, otherwise a stale request could slip
// through with an old token.
func (g *Guard) Unlock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.locked = false
}

// IsLocked reports whether the guard is in the logging-out state.
func (g *Guard) IsLocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.locked
}
