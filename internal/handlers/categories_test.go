package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	incomeOnly := true

	tests := []struct {
		name     string
		isIncome *bool
		stored   []string
	}{
		{name: "all categories", isIncome: nil, stored: []string{"Food", "Salary"}},
		{name: "income categories only", isIncome: &incomeOnly, stored: []string{"Salary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCategoryLister(ctrl)
			mockSvc.EXPECT().
				Categories(gomock.Any(), userID, tt.isIncome).
				Return(tt.stored, nil)

			handler := NewListCategoriesHandler(mockSvc, tt.isIncome)

			req := authedRequest(http.MethodGet, "/transactions/categories", nil, userID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp []string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.stored, resp)
		})
	}
}
