package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExportTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("serves the CSV as an attachment", func(t *testing.T) {
		body := []byte("id,user,name,category,cost,addedOn,isIncome\n")

		mockSvc := NewMockExporter(ctrl)
		mockSvc.EXPECT().ExportCSV(gomock.Any(), userID).Return(body, nil)

		handler := NewExportTransactionsHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/transactions/export", nil, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="paisable_transactions.csv"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, body, rr.Body.Bytes())
	})

	t.Run("store failure yields a clean JSON 500, not a truncated file", func(t *testing.T) {
		mockSvc := NewMockExporter(ctrl)
		mockSvc.EXPECT().ExportCSV(gomock.Any(), userID).Return(nil, errors.New("DB failure"))

		handler := NewExportTransactionsHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/transactions/export", nil, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Server Error", resp.Message)
		assert.Equal(t, "DB failure", resp.Error)
	})
}
