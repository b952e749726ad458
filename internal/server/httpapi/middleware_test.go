package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ezilbeari/pennywise/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestRequireAuth_NoHeader(t *testing.T) {
	verify := func(token string) (string, error) { return "", errors.New("should not be called") }

	handler := RequireAuth(verify)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "no token provided" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	verify := func(token string) (string, error) { return "", errors.New("bad token") }

	handler := RequireAuth(verify)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "invalid or expired token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRequireAuth_ValidTokenInjectsUserID(t *testing.T) {
	verify := func(token string) (string, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token %q", token)
		}
		return "u1", nil
	}

	var gotUserID string
	handler := RequireAuth(verify)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	if gotUserID != "u1" {
		t.Fatalf("user id: got %q want %q", gotUserID, "u1")
	}
}

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	handler := Recovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want 500", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "internal server error" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
