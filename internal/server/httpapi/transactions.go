package httpapi

import (
	"errors"
	"net/http"

	"github.com/ezilbeari/pennywise/internal/common"
	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/models"
	"github.com/ezilbeari/pennywise/internal/server/services"
)

// TransactionHandler serves the protected transaction endpoints.
type TransactionHandler struct {
	transactions *services.TransactionService
	receipts     *services.ReceiptService
	logger       logging.Logger
}

// NewTransactionHandler constructs a TransactionHandler.
func NewTransactionHandler(ts *services.TransactionService, rs *services.ReceiptService, logger logging.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: ts, receipts: rs, logger: logger.With("module", "transaction_handler")}
}

type createTransactionRequest struct {
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	CategoryID *string `json:"categoryId"`
	Note       string  `json:"note"`
}

type transactionListResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
}

type presignUploadRequest struct {
	TransactionID string `json:"transactionId"`
}

type presignUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type presignDownloadResponse struct {
	URL string `json:"url"`
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	result, err := h.transactions.List(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "transaction list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, transactionListResponse{Transactions: result})
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t := &models.Transaction{
		UserID:     UserIDFromContext(r.Context()),
		Amount:     req.Amount,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Note:       req.Note,
	}

	created, err := h.transactions.Create(r.Context(), t)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "missing amount or type")
			return
		}
		h.logger.Error(r.Context(), "transaction create failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// PresignReceiptUpload handles POST /api/transactions/receipts/upload-url.
func (h *TransactionHandler) PresignReceiptUpload(w http.ResponseWriter, r *http.Request) {
	var req presignUploadRequest
	if err := decodeJSON(r, &req); err != nil || req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	userID := UserIDFromContext(r.Context())

	key, url, err := h.receipts.PresignUpload(r.Context(), userID, req.TransactionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		h.logger.Error(r.Context(), "receipt presign failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, presignUploadResponse{Key: key, URL: url})
}

// PresignReceiptDownload handles GET /api/transactions/receipts/download-url?key=...
func (h *TransactionHandler) PresignReceiptDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key")
		return
	}

	url, err := h.receipts.PresignDownload(r.Context(), key)
	if err != nil {
		h.logger.Error(r.Context(), "receipt presign failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, presignDownloadResponse{URL: url})
}
