package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/services"
)

// TransactionDeleter defines the interface that the ledger service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

// NewDeleteTransactionHandler returns an HTTP handler deleting one transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction id"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/{id} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		if err := svc.Delete(r.Context(), userID, transactionID); err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				writeMessage(w, http.StatusNotFound, "Transaction not found")
				return
			}
			logger.Log.Errorw("failed to delete transaction", "err", err)
			writeServerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
