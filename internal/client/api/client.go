// Package api implements the HTTP client for the backend REST API,
// including the middleware pipeline that keeps a consistent authenticated
// state across concurrent calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 8 * time.Second

// Client talks to the backend over JSON/HTTP. Authenticated calls run
// through the middleware pipeline; the session-establishment endpoints
// (register, login, refresh, logout) bypass it so a locked guard never
// prevents re-authentication or the final revocation call.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	middlewares []Middleware
}

// NewClient constructs a Client for the given base URL, e.g.
// "http://localhost:5050".
func NewClient(baseURL string, middlewares ...Middleware) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		middlewares: middlewares,
	}
}

// do performs one JSON round trip. When authenticated is true the request
// passes through the middleware pipeline on the way out and back in. A non-2xx
// status becomes an *HTTPError carrying the server's error message; transport
// failures are wrapped and returned as-is.
func (c *Client) do(ctx context.Context, method, path string, in, out any, authenticated bool) error {

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		for _, m := range c.middlewares {
			if err := m.BeforeRequest(req); err != nil {
				return err
			}
		}
	}

	resp, err := c.httpClient.Do(req)

	if authenticated {
		for _, m := range c.middlewares {
			if mwErr := m.OnResponse(resp, err); mwErr != nil {
				if resp != nil {
					resp.Body.Close()
				}
				return mwErr
			}
		}
	}

	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &HTTPError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Error == "" {
		return "unexpected server error"
	}
	return payload.Error
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns the issued token pair.
func (c *Client) Register(ctx context.Context, email, password, name string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		&registerRequest{Email: email, Password: password, Name: name}, &pair, false)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Login authenticates with email and password and returns the token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		&loginRequest{Email: email, Password: password}, &pair, false)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp refreshResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh",
		&refreshRequest{RefreshToken: refreshToken}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout revokes the refresh token server-side. The server treats logout as
// idempotent, so calling it with an already-revoked token still succeeds.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout",
		&refreshRequest{RefreshToken: refreshToken}, nil, false)
}

// ProfileUpdate is the payload for UpdateProfile. Password fields are only
// sent when the user is changing their password.
type ProfileUpdate struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// UpdateProfile updates the account profile. Changing the password revokes
// every active refresh token for the user.
func (c *Client) UpdateProfile(ctx context.Context, update *ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/account/profile", update, nil, true)
}

type transactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

// ListTransactions returns the user's transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	var resp transactionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

type createTransactionRequest struct {
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	CategoryID *string `json:"categoryId,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// AddTransaction records a new income or expense transaction.
func (c *Client) AddTransaction(ctx context.Context, amount float64, txType, note string) (*Transaction, error) {
	var tx Transaction
	err := c.do(ctx, http.MethodPost, "/api/transactions",
		&createTransactionRequest{Amount: amount, Type: txType, Note: note}, &tx, true)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListBudgets returns the user's budgets with current usage.
func (c *Client) ListBudgets(ctx context.Context) ([]*Budget, error) {
	var budgets []*Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets", nil, &budgets, true); err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetSettings returns the user's settings.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var s Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &s, true); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSettings stores the user's settings.
func (c *Client) UpdateSettings(ctx context.Context, s *Settings) error {
	return c.do(ctx, http.MethodPut, "/api/settings", s, nil, true)
}

// GetSummary returns the current-month totals and recent transactions.
func (c *Client) GetSummary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.do(ctx, http.MethodGet, "/api/home", nil, &s, true); err != nil {
		return nil, err
	}
	return &s, nil
}
