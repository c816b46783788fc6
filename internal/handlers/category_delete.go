package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/services"
)

// CategoryDeleter defines the interface that the ledger service must implement.
type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, userID uuid.UUID, category string) (int64, error)
}

// DeleteCategoryRequest represents the JSON body for deleting a category
// swagger:model DeleteCategoryRequest
type DeleteCategoryRequest struct {
	// Category to delete
	// required: true
	// default: Food
	CategoryToDelete string `json:"categoryToDelete"`
}

// DeleteCategoryResponse reports how many transactions were relabelled
// swagger:model DeleteCategoryResponse
type DeleteCategoryResponse struct {
	// Number of transactions moved to the fallback category
	// default: 0
	ReassignedCount int64 `json:"reassignedCount"`
}

// NewDeleteCategoryHandler returns an HTTP handler removing a category.
// Deleting a category only relabels its transactions to "Miscellaneous";
// no transaction is ever deleted by this endpoint.
// @Summary Delete a category
// @Tags transactions
// @Accept json
// @Produce json
// @Param deleteCategoryRequest body handlers.DeleteCategoryRequest true "Category to delete"
// @Success 200 {object} handlers.DeleteCategoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing category name"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions/category [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		var req DeleteCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		reassigned, err := svc.DeleteCategory(r.Context(), userID, req.CategoryToDelete)
		if err != nil {
			if errors.Is(err, services.ErrMissingCategory) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to delete category", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteCategoryResponse{ReassignedCount: reassigned})
	}
}
