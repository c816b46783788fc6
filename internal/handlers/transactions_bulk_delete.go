package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
)

// BulkDeleter defines the interface that the ledger service must implement.
type BulkDeleter interface {
	BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// BulkDeleteRequest represents the JSON body for a bulk delete
// swagger:model BulkDeleteRequest
type BulkDeleteRequest struct {
	// Transaction ids to delete, best effort
	TransactionIDs []string `json:"transactionIds"`
}

// BulkDeleteResponse reports how many transactions were removed
// swagger:model BulkDeleteResponse
type BulkDeleteResponse struct {
	// Number of transactions actually removed
	// default: 0
	DeletedCount int64 `json:"deletedCount"`
}

// NewBulkDeleteHandler returns an HTTP handler deleting a set of transactions.
// Unknown, foreign, and malformed ids are skipped silently: this is a
// best-effort set operation, not an all-or-nothing one.
// @Summary Bulk delete transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param bulkDeleteRequest body handlers.BulkDeleteRequest true "Ids to delete"
// @Success 200 {object} handlers.BulkDeleteResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/bulk [delete]
// @Security BearerAuth
func NewBulkDeleteHandler(svc BulkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		var req BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ids := make([]uuid.UUID, 0, len(req.TransactionIDs))
		for _, raw := range req.TransactionIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}

		deleted, err := svc.BulkDelete(r.Context(), userID, ids)
		if err != nil {
			logger.Log.Errorw("failed to bulk delete transactions", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BulkDeleteResponse{DeletedCount: deleted})
	}
}
