package httpapi

import (
	"errors"
	"net/http"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/services"
)

// SettingsHandler serves the protected settings endpoints.
type SettingsHandler struct {
	settings *services.SettingsService
	logger   logging.Logger
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(ss *services.SettingsService, logger logging.Logger) *SettingsHandler {
	return &SettingsHandler{settings: ss, logger: logger.With("module", "settings_handler")}
}

type updateSettingsRequest struct {
	Currency string `json:"currency"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	s, err := h.settings.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "settings get failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s := &models.Settings{UserID: UserIDFromContext(r.Context()), Currency: req.Currency}

	if err := h.settings.Update(r.Context(), s); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "missing currency")
			return
		}
		h.logger.Error(r.Context(), "settings update failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
