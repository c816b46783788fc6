package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/middlewares"
)

// ErrorResponse is the error body of the ledger endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable message
	// default: Server Error
	Message string `json:"message"`

	// Underlying error detail, present on server errors only
	Error string `json:"error,omitempty"`
}

// writeMessage writes a JSON error body with a human-readable message.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

// writeServerError writes the 500 body shape shared by the ledger endpoints.
func writeServerError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Message: "Server Error",
		Error:   err.Error(),
	})
}

// ownerFromContext resolves the authenticated user id placed in the request
// context by the auth middleware. Writes 401 and returns false if absent.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Log.Error("request reached a protected handler without a user id")
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
