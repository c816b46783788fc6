package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/paisable/paisable/internal/services"
)

// defaultPageSize is the page size used when the limit parameter is absent.
const defaultPageSize = 10

// TransactionLister defines the interface that the ledger service must implement.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, page, limit int) ([]models.TransactionDB, int, error)
}

// ListTransactionsResponse represents one page of the ledger
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	// Page of matching transactions, most recent first
	Transactions []models.TransactionDB `json:"transactions"`

	// Total number of pages for the active filter
	// default: 1
	TotalPages int `json:"totalPages"`
}

// parseDate accepts both plain dates and RFC 3339 date-times, as sent by the
// date picker and by API clients respectively.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// NewListTransactionsHandler returns an HTTP handler listing the ledger.
// @Summary List transactions
// @Description Returns one page of the authenticated user's transactions matching the supplied filters
// @Tags transactions
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive match on name or category"
// @Param isIncome query bool false "Restrict to income (true) or expense (false)"
// @Param category query string false "Exact category match"
// @Param startDate query string false "Inclusive lower bound on addedOn (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on addedOn (YYYY-MM-DD)"
// @Success 200 {object} handlers.ListTransactionsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination or date range"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerFromContext(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()

		page := 1
		if v := q.Get("page"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "page must be an integer")
				return
			}
			page = parsed
		}

		limit := defaultPageSize
		if v := q.Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = parsed
		}

		var filter models.TransactionFilter
		if v := q.Get("search"); v != "" {
			filter.Search = &v
		}
		if v := q.Get("category"); v != "" {
			filter.Category = &v
		}
		if v := q.Get("isIncome"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "isIncome must be true or false")
				return
			}
			filter.IsIncome = &parsed
		}
		if v := q.Get("startDate"); v != "" {
			parsed, err := parseDate(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "startDate must be a date")
				return
			}
			filter.StartAt = &parsed
		}
		if v := q.Get("endDate"); v != "" {
			parsed, err := parseDate(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "endDate must be a date")
				return
			}
			filter.EndAt = &parsed
		}

		transactions, totalPages, err := svc.List(r.Context(), userID, filter, page, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPage),
				errors.Is(err, services.ErrInvalidLimit),
				errors.Is(err, services.ErrInvalidDateRange):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to list transactions", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ListTransactionsResponse{
			Transactions: transactions,
			TotalPages:   totalPages,
		})
	}
}
