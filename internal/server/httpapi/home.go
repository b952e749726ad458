package httpapi

import (
	"net/http"

	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/services"
)

// HomeHandler serves the home-screen summary endpoint.
type HomeHandler struct {
	summary *services.SummaryService
	logger  logging.Logger
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(ss *services.SummaryService, logger logging.Logger) *HomeHandler {
	return &HomeHandler{summary: ss, logger: logger.With("module", "home_handler")}
}

// Summary handles GET /api/home.
func (h *HomeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	s, err := h.summary.ForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "summary failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, s)
}
