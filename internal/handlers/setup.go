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

// SetupCompleter defines the interface that the setup service must implement.
type SetupCompleter interface {
	CompleteSetup(ctx context.Context, userID uuid.UUID, currency string) error
}

// UserGetter returns a user's profile.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// SetupRequest represents the JSON body for completing onboarding
// swagger:model SetupRequest
type SetupRequest struct {
	// Default display currency
	// required: true
	// default: USD
	DefaultCurrency string `json:"defaultCurrency"`
}

// NewSetupHandler returns an HTTP handler that completes user onboarding.
// @Summary Complete setup
// @Description Stores the chosen default currency and marks the account set up
// @Tags auth
// @Accept json
// @Produce json
// @Param setupRequest body handlers.SetupRequest true "Setup request"
// @Success 200 {object} map[string]string "Setup complete"
// @Failure 400 {object} handlers.ErrorResponse "Missing currency"
// @Router /auth/setup [post]
// @Security BearerAuth
func NewSetupHandler(svc SetupCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		var req SetupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.CompleteSetup(r.Context(), userID, req.DefaultCurrency); err != nil {
			if errors.Is(err, services.ErrMissingCurrency) {
				writeMessage(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to complete setup", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Setup complete"})
	}
}

// NewMeHandler returns an HTTP handler serving the authenticated user's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeMessage(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to get user", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
