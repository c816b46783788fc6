package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
)

// exportFilename is the attachment name of the CSV download.
const exportFilename = "paisable_transactions.csv"

// Exporter defines the interface that the ledger service must implement.
type Exporter interface {
	ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// NewExportTransactionsHandler returns an HTTP handler serving the full
// ledger as a CSV download. The body is assembled before any header is
// written, so a store failure produces a clean JSON 500 and never a
// truncated CSV file.
// @Summary Export transactions
// @Description Downloads the user's entire ledger as CSV in stored order
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/export [get]
// @Security BearerAuth
func NewExportTransactionsHandler(svc Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		body, err := svc.ExportCSV(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to export transactions", "err", err)
			writeServerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
