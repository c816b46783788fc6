package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/paisable/paisable/internal/services"
)

// TransactionUpdater defines the interface that the ledger service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
}

// NewUpdateTransactionHandler returns an HTTP handler updating a transaction.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param transaction body handlers.TransactionRequest true "Transaction fields"
// @Success 200 {object} models.TransactionDB "Updated transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or fields"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/{id} [put]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
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

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		txn, err := req.toModel(userID)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "addedOn must be a date")
			return
		}
		txn.TransactionID = transactionID

		updated, err := svc.Update(r.Context(), txn)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrNegativeCost):
				writeMessage(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrTransactionNotFound):
				writeMessage(w, http.StatusNotFound, "Transaction not found")
			default:
				logger.Log.Errorw("failed to update transaction", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
