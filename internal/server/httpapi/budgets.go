package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// BudgetHandler serves the protected budget endpoints.
type BudgetHandler struct {
	budgets *services.BudgetService
	logger  logging.Logger
}

// NewBudgetHandler constructs a BudgetHandler.
func NewBudgetHandler(bs *services.BudgetService, logger logging.Logger) *BudgetHandler {
	return &BudgetHandler{budgets: bs, logger: logger.With("module", "budget_handler")}
}

type createBudgetRequest struct {
	CategoryID string     `json:"categoryId"`
	Category   string     `json:"category"`
	Amount     float64    `json:"amount"`
	Period     string     `json:"period"`
	StartDate  *time.Time `json:"startDate"`
}

type updateBudgetRequest struct {
	Amount float64 `json:"amount"`
}

// List handles GET /api/budgets.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	result, err := h.budgets.List(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "budget list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Create handles POST /api/budgets.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.budgets.Create(r.Context(), services.CreateInput{
		UserID:     UserIDFromContext(r.Context()),
		CategoryID: req.CategoryID,
		Category:   req.Category,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  req.StartDate,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "invalid budget")
			return
		}
		h.logger.Error(r.Context(), "budget create failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/budgets/{id}.
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := UserIDFromContext(r.Context())
	budgetID := chi.URLParam(r, "id")

	updated, err := h.budgets.UpdateAmount(r.Context(), userID, budgetID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "amount must be a positive number")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "budget not found")
		default:
			h.logger.Error(r.Context(), "budget update failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/budgets/{id}.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	budgetID := chi.URLParam(r, "id")

	if err := h.budgets.Delete(r.Context(), userID, budgetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "budget not found")
			return
		}
		h.logger.Error(r.Context(), "budget delete failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
