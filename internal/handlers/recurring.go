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

// RecurringLister defines the read interface for recurring templates.
type RecurringLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.RecurringDB, error)
}

// RecurringCreator defines the create interface for recurring templates.
type RecurringCreator interface {
	Create(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error)
}

// RecurringUpdater defines the update interface for recurring templates.
type RecurringUpdater interface {
	Update(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error)
}

// RecurringDeleter defines the delete interface for recurring templates.
type RecurringDeleter interface {
	Delete(ctx context.Context, userID, recurringID uuid.UUID) error
}

// RecurringRequest represents the JSON body for a recurring template
// swagger:model RecurringRequest
type RecurringRequest struct {
	// Free-form label
	// required: true
	// default: Netflix
	Name string `json:"name"`

	// Category name
	// required: true
	// default: Entertainment
	Category string `json:"category"`

	// Positive amount
	// required: true
	// default: 15.99
	Amount float64 `json:"amount"`

	// true = income, false = expense
	IsIncome bool `json:"isIncome"`

	// One of daily, weekly, monthly, yearly
	// required: true
	// default: monthly
	Frequency string `json:"frequency"`

	// First due date (YYYY-MM-DD)
	// required: true
	NextDueDate string `json:"nextDueDate"`
}

func (req RecurringRequest) toModel(userID uuid.UUID) (models.RecurringDB, error) {
	rec := models.RecurringDB{
		UserID:    userID,
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		IsIncome:  req.IsIncome,
		Frequency: req.Frequency,
	}
	if req.NextDueDate != "" {
		due, err := parseDate(req.NextDueDate)
		if err != nil {
			return models.RecurringDB{}, err
		}
		rec.NextDueDate = due
	}
	return rec, nil
}

// NewListRecurringHandler returns an HTTP handler listing recurring templates.
// @Summary List recurring transactions
// @Tags recurring
// @Produce json
// @Success 200 {array} models.RecurringDB
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /recurring [get]
// @Security BearerAuth
func NewListRecurringHandler(svc RecurringLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		recurring, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list recurring transactions", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recurring)
	}
}

// NewCreateRecurringHandler returns an HTTP handler creating a recurring template.
// @Summary Create a recurring transaction
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body handlers.RecurringRequest true "Recurring template fields"
// @Success 201 {object} models.RecurringDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid template"
// @Router /recurring/create [post]
// @Security BearerAuth
func NewCreateRecurringHandler(svc RecurringCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		var req RecurringRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := req.toModel(userID)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "nextDueDate must be a date")
			return
		}

		created, err := svc.Create(r.Context(), rec)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRecurring),
				errors.Is(err, services.ErrInvalidFrequency):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to create recurring transaction", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdateRecurringHandler returns an HTTP handler updating a recurring template.
// @Summary Update a recurring transaction
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring template id"
// @Param recurring body handlers.RecurringRequest true "Recurring template fields"
// @Success 200 {object} models.RecurringDB
// @Failure 404 {object} handlers.ErrorResponse "Recurring transaction not found"
// @Router /recurring/{id} [put]
// @Security BearerAuth
func NewUpdateRecurringHandler(svc RecurringUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		recurringID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid recurring transaction id")
			return
		}

		var req RecurringRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := req.toModel(userID)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "nextDueDate must be a date")
			return
		}
		rec.RecurringID = recurringID

		updated, err := svc.Update(r.Context(), rec)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRecurring),
				errors.Is(err, services.ErrInvalidFrequency):
				writeMessage(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrRecurringNotFound):
				writeMessage(w, http.StatusNotFound, "Recurring transaction not found")
			default:
				logger.Log.Errorw("failed to update recurring transaction", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteRecurringHandler returns an HTTP handler deleting a recurring template.
// @Summary Delete a recurring transaction
// @Tags recurring
// @Param id path string true "Recurring template id"
// @Success 204 "Recurring transaction deleted"
// @Failure 404 {object} handlers.ErrorResponse "Recurring transaction not found"
// @Router /recurring/{id} [delete]
// @Security BearerAuth
func NewDeleteRecurringHandler(svc RecurringDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		recurringID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid recurring transaction id")
			return
		}

		if err := svc.Delete(r.Context(), userID, recurringID); err != nil {
			if errors.Is(err, services.ErrRecurringNotFound) {
				writeMessage(w, http.StatusNotFound, "Recurring transaction not found")
				return
			}
			logger.Log.Errorw("failed to delete recurring transaction", "err", err)
			writeServerError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
