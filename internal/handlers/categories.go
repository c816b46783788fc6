package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
)

// CategoryLister defines the interface that the ledger service must implement.
type CategoryLister interface {
	Categories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]string, error)
}

// NewListCategoriesHandler returns an HTTP handler listing the distinct
// category names in use. isIncome restricts the listing to income (true) or
// expense (false) categories; nil lists both.
// @Summary List categories
// @Tags transactions
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/categories [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc CategoryLister, isIncome *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		categories, err := svc.Categories(r.Context(), userID, isIncome)
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}
