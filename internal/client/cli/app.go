// Package cli implements the interactive Pennywise command-line client.
package cli

import (
	"bufio"
	"os"

	"github.com/ezilbeari/pennywise/internal/client/api"
	"github.com/ezilbeari/pennywise/internal/client/config"
	"github.com/ezilbeari/pennywise/internal/client/services"
	"github.com/ezilbeari/pennywise/internal/client/session"
)

type App struct {
	config      *config.Config
	guard       *session.Guard
	tokens      api.TokenStore
	apiClient   *api.Client
	authService services.AuthService
	userEmail   string
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	tokens, err := api.NewFileTokenStore(c.StateDir)
	if err != nil {
		return nil, err
	}

	guard := &session.Guard{}
	apiClient := api.NewClient(c.ServerEndpointAddr, api.NewAuthMiddleware(guard, tokens))
	as := services.NewAuthService(apiClient, guard, tokens)

	return &App{
		config:      c,
		guard:       guard,
		tokens:      tokens,
		apiClient:   apiClient,
		authService: as,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// isLoggedIn reports whether a usable session exists: an access token is
// stored and the guard is not locked. A token left over from a previous run
// counts until the server rejects it.
func (a *App) isLoggedIn() bool {
	if a.guard.IsLocked() {
		return false
	}
	token, err := a.tokens.Load()
	return err == nil && token != ""
}
