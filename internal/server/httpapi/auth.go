package httpapi

import (
	"errors"
	"net/http"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/services"
)

// AuthHandler serves the registration and session-lifecycle endpoints.
type AuthHandler struct {
	users  *services.UserService
	logger logging.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger.With("module", "auth_handler")}
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

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// tokenPairResponse carries both tokens after register/login.
type tokenPairResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// tokenResponse carries the new access token after a refresh.
type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "missing email or password")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusBadRequest, "email already registered")
		default:
			h.logger.Error(r.Context(), "register failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// Unknown email and wrong password are indistinguishable here.
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	access, err := h.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "missing refresh token")
		case errors.Is(err, common.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, "invalid refresh token")
		case errors.Is(err, common.ErrTokenRevoked):
			writeError(w, http.StatusUnauthorized, "refresh token revoked")
		default:
			h.logger.Error(r.Context(), "refresh failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: access})
}

// Logout handles POST /api/auth/logout. It never fails observably: a
// malformed body, a missing token, and an already-revoked token all yield
// success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	_ = decodeJSON(r, &req)

	if err := h.users.Logout(r.Context(), req.RefreshToken); err != nil {
		h.logger.Warn(r.Context(), "logout cleanup failed", "error", err.Error())
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
