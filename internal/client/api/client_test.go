package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ezilbeari/pennywise/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Guard, TokenStore) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	guard := &session.Guard{}
	tokens, err := NewFileTokenStore(t.TempDir())
	require.NoError(t, err)

	return NewClient(ts.URL, NewAuthMiddleware(guard, tokens)), guard, tokens
}

func writeTestJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_DecodesTokenPair(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body["email"])

		writeTestJSON(w, http.StatusOK, map[string]string{"token": "acc", "refreshToken": "ref"})
	}))

	pair, err := client.Login(context.Background(), "alice@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "acc", pair.Token)
	assert.Equal(t, "ref", pair.RefreshToken)
}

func TestErrorResponse_BecomesHTTPError(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}))

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "invalid credentials", httpErr.Message)
	assert.True(t, IsAuthError(err))
}

func TestNetworkError_IsNotHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // connection refused from here on

	client := NewClient(ts.URL)

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)

	var httpErr *HTTPError
	assert.False(t, IsAuthError(err))
	assert.NotErrorAs(t, err, &httpErr)
}

func TestAuthenticatedCall_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeTestJSON(w, http.StatusOK, map[string]any{"transactions": []any{}})
	}))
	require.NoError(t, tokens.Save("acc-1"))

	_, err := client.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer acc-1", gotAuth)
}

// Test401_LocksOutSubsequentCalls drives the lock lifecycle end to end:
// a 401 locks the guard, later calls fail fast without touching the network,
// and re-establishing a session (token stored, then unlock) restores service.
func Test401_LocksOutSubsequentCalls(t *testing.T) {
	var mu sync.Mutex
	var requests int
	unauthorized := true

	client, guard, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		reject := unauthorized
		mu.Unlock()

		if reject {
			writeTestJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		writeTestJSON(w, http.StatusOK, map[string]any{"transactions": []any{}})
	}))
	require.NoError(t, tokens.Save("stale-token"))

	// first call hits the server, gets 401, locks the guard
	_, err := client.ListTransactions(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.True(t, guard.IsLocked())

	// second call is refused before reaching the network
	_, err = client.ListTransactions(context.Background())
	var lockErr *AuthLockError
	require.ErrorAs(t, err, &lockErr)

	mu.Lock()
	assert.Equal(t, 1, requests, "locked call must not reach the server")
	unauthorized = false
	mu.Unlock()

	// new session: store the token first, then unlock
	require.NoError(t, tokens.Save("fresh-token"))
	guard.Unlock()

	_, err = client.ListTransactions(context.Background())
	require.NoError(t, err)
}

// TestConcurrentInFlight_BothFailAuthClass starts two calls before any 401
// arrives. Whichever lands first locks the guard; the other resolves as an
// auth-class failure instead of succeeding.
func TestConcurrentInFlight_BothFailAuthClass(t *testing.T) {
	arrived := make(chan struct{}, 2)
	release := make(chan struct{})

	client, guard, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrived <- struct{}{}
		<-release
		writeTestJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
	}))
	require.NoError(t, tokens.Save("stale-token"))

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := client.ListTransactions(context.Background())
			errs <- err
		}()
	}

	// both requests are in flight before either response is sent
	<-arrived
	<-arrived
	close(release)

	for i := 0; i < 2; i++ {
		err := <-errs
		require.Error(t, err)
		assert.True(t, IsAuthError(err), "call %d: %v", i, err)
	}
	assert.True(t, guard.IsLocked())
}
