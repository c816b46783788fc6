package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
)

// Summarizer defines the interface that the ledger service must implement.
type Summarizer interface {
	Summarize(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
}

// NewSummaryHandler returns an HTTP handler serving ledger totals.
// @Summary Ledger summary
// @Description Aggregates the user's entire ledger: total income, total expenses, and balance
// @Tags transactions
// @Produce json
// @Success 200 {object} models.Summary
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summarize(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to summarize ledger", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
