package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/paisable/paisable/internal/services"
)

// TransactionCreator defines the interface that the ledger service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
}

// TransactionRequest represents the JSON body for creating or updating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Free-form label
	// required: true
	// default: Groceries
	Name string `json:"name"`

	// Category name
	// required: true
	// default: Food
	Category string `json:"category"`

	// Non-negative amount
	// required: true
	// default: 42.50
	Cost float64 `json:"cost"`

	// Transaction date, defaults to now
	AddedOn string `json:"addedOn,omitempty"`

	// true = income, false = expense
	IsIncome bool `json:"isIncome"`

	// Optional note
	Note string `json:"note,omitempty"`
}

// toModel converts the request into a ledger row owned by userID.
func (req TransactionRequest) toModel(userID uuid.UUID) (models.TransactionDB, error) {
	txn := models.TransactionDB{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Cost:     req.Cost,
		IsIncome: req.IsIncome,
		Note:     req.Note,
	}
	if req.AddedOn != "" {
		addedOn, err := parseDate(req.AddedOn)
		if err != nil {
			return models.TransactionDB{}, err
		}
		txn.AddedOn = addedOn
	}
	return txn, nil
}

// NewCreateTransactionHandler returns an HTTP handler creating a transaction.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body handlers.TransactionRequest true "Transaction fields"
// @Success 201 {object} models.TransactionDB "Created transaction"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields or negative cost"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
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

		created, err := svc.Create(r.Context(), txn)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrNegativeCost):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to create transaction", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
