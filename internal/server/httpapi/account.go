package httpapi

import (
	"errors"
	"net/http"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/services"
)

// AccountHandler serves the authenticated profile endpoint.
type AccountHandler struct {
	users  *services.UserService
	logger logging.Logger
}

// NewAccountHandler constructs an AccountHandler.
func NewAccountHandler(users *services.UserService, logger logging.Logger) *AccountHandler {
	return &AccountHandler{users: users, logger: logger.With("module", "account_handler")}
}

type updateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile handles PUT /api/account/profile. A password change revokes
// every refresh token for the user.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.NewPassword != "" && req.CurrentPassword == "" {
		writeError(w, http.StatusBadRequest, "current password required")
		return
	}

	userID := UserIDFromContext(r.Context())

	err := h.users.UpdateProfile(r.Context(), userID, req.Email, req.Name, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrWrongPassword):
			writeError(w, http.StatusBadRequest, "current password is incorrect")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "email is required")
		default:
			h.logger.Error(r.Context(), "profile update failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
