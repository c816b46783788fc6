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

// BudgetLister defines the read interface for budgets.
type BudgetLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.BudgetWithSpent, error)
}

// BudgetCreator defines the create interface for budgets.
type BudgetCreator interface {
	Create(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error)
}

// BudgetUpdater defines the update interface for budgets.
type BudgetUpdater interface {
	Update(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error)
}

// BudgetDeleter defines the delete interface for budgets.
type BudgetDeleter interface {
	Delete(ctx context.Context, userID, budgetID uuid.UUID) error
}

// BudgetRequest represents the JSON body for creating or updating a budget
// swagger:model BudgetRequest
type BudgetRequest struct {
	// Category the budget applies to
	// required: true
	// default: Food
	Category string `json:"category"`

	// Monthly limit, must be positive
	// required: true
	// default: 300
	Amount float64 `json:"amount"`

	// Month 1..12
	// required: true
	// default: 9
	Month int `json:"month"`

	// Four-digit year
	// required: true
	// default: 2025
	Year int `json:"year"`
}

func (req BudgetRequest) toModel(userID uuid.UUID) models.BudgetDB {
	return models.BudgetDB{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
	}
}

// NewListBudgetsHandler returns an HTTP handler listing budgets with their
// spent amounts.
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} models.BudgetWithSpent
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /budgets [get]
// @Security BearerAuth
func NewListBudgetsHandler(svc BudgetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		budgets, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list budgets", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, budgets)
	}
}

// NewCreateBudgetHandler returns an HTTP handler creating a budget.
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body handlers.BudgetRequest true "Budget fields"
// @Success 201 {object} models.BudgetDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid budget"
// @Router /budgets [post]
// @Security BearerAuth
func NewCreateBudgetHandler(svc BudgetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		var req BudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.Create(r.Context(), req.toModel(userID))
		if err != nil {
			if errors.Is(err, services.ErrInvalidBudget) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to create budget", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdateBudgetHandler returns an HTTP handler updating a budget.
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget id"
// @Param budget body handlers.BudgetRequest true "Budget fields"
// @Success 200 {object} models.BudgetDB
// @Failure 404 {object} handlers.ErrorResponse "Budget not found"
// @Router /budgets/{id} [put]
// @Security BearerAuth
func NewUpdateBudgetHandler(svc BudgetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		budgetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid budget id")
			return
		}

		var req BudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		budget := req.toModel(userID)
		budget.BudgetID = budgetID

		updated, err := svc.Update(r.Context(), budget)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBudget):
				writeMessage(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrBudgetNotFound):
				writeMessage(w, http.StatusNotFound, "Budget not found")
			default:
				logger.Log.Errorw("failed to update budget", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteBudgetHandler returns an HTTP handler deleting a budget.
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget id"
// @Success 204 "Budget deleted"
// @Failure 404 {object} handlers.ErrorResponse "Budget not found"
// @Router /budgets/{id} [delete]
// @Security BearerAuth
func NewDeleteBudgetHandler(svc BudgetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		budgetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid budget id")
			return
		}

		if err := svc.Delete(r.Context(), userID, budgetID); err != nil {
			if errors.Is(err, services.ErrBudgetNotFound) {
				writeMessage(w, http.StatusNotFound, "Budget not found")
				return
			}
			logger.Log.Errorw("failed to delete budget", "err", err)
			writeServerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
