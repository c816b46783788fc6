package services_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/paisable/paisable/internal/models"
	"github.com/paisable/paisable/internal/services"
)

func TestLedgerService_List_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewLedgerService(services.NewMockTransactionReader(ctrl), nil, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filter  models.TransactionFilter
		page    int
		limit   int
		wantErr error
	}{
		{name: "page below 1", page: 0, limit: 10, wantErr: services.ErrInvalidPage},
		{name: "negative page", page: -3, limit: 10, wantErr: services.ErrInvalidPage},
		{name: "limit below 1", page: 1, limit: 0, wantErr: services.ErrInvalidLimit},
		{
			name:    "inverted date range",
			filter:  models.TransactionFilter{StartAt: &start, EndAt: &end},
			page:    1,
			limit:   10,
			wantErr: services.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.List(ctx, userID, tt.filter, tt.page, tt.limit)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedgerService_List_TotalPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int
	}{
		{name: "empty ledger still has one page", total: 0, limit: 10, wantPages: 1},
		{name: "exact multiple", total: 20, limit: 10, wantPages: 2},
		{name: "partial last page", total: 25, limit: 10, wantPages: 3},
		{name: "single record", total: 1, limit: 10, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockTransactionReader(ctrl)
			reader.EXPECT().
				List(gomock.Any(), userID, gomock.Any(), tt.limit, 0).
				Return([]models.TransactionDB{}, tt.total, nil)

			svc := services.NewLedgerService(reader, nil, nil, nil)
			_, totalPages, err := svc.List(ctx, userID, models.TransactionFilter{}, 1, tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPages, totalPages)
		})
	}
}

func TestLedgerService_List_Offset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	reader := services.NewMockTransactionReader(ctrl)
	reader.EXPECT().
		List(gomock.Any(), userID, gomock.Any(), 10, 20).
		Return([]models.TransactionDB{}, int64(25), nil)

	svc := services.NewLedgerService(reader, nil, nil, nil)
	_, totalPages, err := svc.List(ctx, userID, models.TransactionFilter{}, 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, totalPages)
}

func TestLedgerService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("cache miss computes and caches balance", func(t *testing.T) {
		reader := services.NewMockTransactionReader(ctrl)
		cache := services.NewMockSummaryCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		reader.EXPECT().Summarize(gomock.Any(), userID).
			Return(&models.Summary{TotalIncome: 5000, TotalExpenses: 1000}, nil)
		cache.EXPECT().
			Set(gomock.Any(), userID, models.Summary{TotalIncome: 5000, TotalExpenses: 1000, Balance: 4000}).
			Return(nil)

		svc := services.NewLedgerService(reader, nil, cache, nil)
		summary, err := svc.Summarize(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 5000.0, summary.TotalIncome)
		assert.Equal(t, 1000.0, summary.TotalExpenses)
		assert.Equal(t, summary.TotalIncome-summary.TotalExpenses, summary.Balance)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		reader := services.NewMockTransactionReader(ctrl)
		cache := services.NewMockSummaryCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), userID).
			Return(&models.Summary{TotalIncome: 10, TotalExpenses: 4, Balance: 6}, nil)

		svc := services.NewLedgerService(reader, nil, cache, nil)
		summary, err := svc.Summarize(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 6.0, summary.Balance)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		reader := services.NewMockTransactionReader(ctrl)
		reader.EXPECT().Summarize(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

		svc := services.NewLedgerService(reader, nil, nil, nil)
		_, err := svc.Summarize(ctx, userID)
		assert.Error(t, err)
	})
}

func TestLedgerService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	salaryID := uuid.New()
	groceriesID := uuid.New()

	records := []models.TransactionDB{
		{
			TransactionID: salaryID,
			UserID:        userID,
			Name:          "Salary",
			Category:      "Income",
			Cost:          5000,
			AddedOn:       time.Date(2025, 9, 28, 10, 0, 0, 0, time.UTC),
			IsIncome:      true,
		},
		{
			TransactionID: groceriesID,
			UserID:        userID,
			Name:          "Groceries",
			Category:      "Food",
			Cost:          1000,
			AddedOn:       time.Date(2025, 9, 28, 12, 0, 0, 0, time.UTC),
			IsIncome:      false,
		},
	}

	reader := services.NewMockTransactionReader(ctrl)
	reader.EXPECT().GetAll(gomock.Any(), userID).Return(records, nil)

	svc := services.NewLedgerService(reader, nil, nil, nil)
	body, err := svc.ExportCSV(ctx, userID)
	assert.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "user", "name", "category", "cost", "addedOn", "isIncome"}, rows[0])

	// Rows keep stored order, no implicit re-sort.
	assert.Equal(t, salaryID.String(), rows[1][0])
	assert.Equal(t, "Salary", rows[1][2])
	assert.Equal(t, "5000", rows[1][4])
	assert.Equal(t, "2025-09-28T10:00:00Z", rows[1][5])
	assert.Equal(t, "true", rows[1][6])

	assert.Equal(t, groceriesID.String(), rows[2][0])
	assert.Equal(t, "1000", rows[2][4])
	assert.Equal(t, "false", rows[2][6])
}

func TestLedgerService_ExportCSV_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockTransactionReader(ctrl)
	reader.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("DB failure"))

	svc := services.NewLedgerService(reader, nil, nil, nil)
	body, err := svc.ExportCSV(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, body)
}

func TestLedgerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing fields", func(t *testing.T) {
		svc := services.NewLedgerService(nil, services.NewMockTransactionWriter(ctrl), nil, nil)
		_, err := svc.Create(ctx, models.TransactionDB{UserID: userID, Category: "Food"})
		assert.ErrorIs(t, err, services.ErrMissingFields)
	})

	t.Run("negative cost", func(t *testing.T) {
		svc := services.NewLedgerService(nil, services.NewMockTransactionWriter(ctrl), nil, nil)
		_, err := svc.Create(ctx, models.TransactionDB{UserID: userID, Name: "Lunch", Category: "Food", Cost: -1})
		assert.ErrorIs(t, err, services.ErrNegativeCost)
	})

	t.Run("success invalidates cache and publishes event", func(t *testing.T) {
		writer := services.NewMockTransactionWriter(ctrl)
		cache := services.NewMockSummaryCache(ctrl)
		broker := services.NewMockKafkaWriter(ctrl)

		saved := &models.TransactionDB{
			TransactionID: uuid.New(),
			UserID:        userID,
			Name:          "Lunch",
			Category:      "Food",
			Cost:          12.5,
		}
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saved, nil)
		cache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)
		broker.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewLedgerService(nil, writer, cache, broker)
		created, err := svc.Create(ctx, models.TransactionDB{UserID: userID, Name: "Lunch", Category: "Food", Cost: 12.5})
		assert.NoError(t, err)
		assert.Equal(t, saved, created)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		writer := services.NewMockTransactionWriter(ctrl)
		broker := services.NewMockKafkaWriter(ctrl)

		saved := &models.TransactionDB{TransactionID: uuid.New(), UserID: userID, Name: "Lunch", Category: "Food"}
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saved, nil)
		broker.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		svc := services.NewLedgerService(nil, writer, nil, broker)
		_, err := svc.Create(ctx, models.TransactionDB{UserID: userID, Name: "Lunch", Category: "Food"})
		assert.NoError(t, err)
	})
}

func TestLedgerService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTransactionWriter(ctrl)
	writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, sql.ErrNoRows)

	svc := services.NewLedgerService(nil, writer, nil, nil)
	_, err := svc.Update(context.Background(), models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Name:          "Lunch",
		Category:      "Food",
	})
	assert.ErrorIs(t, err, services.ErrTransactionNotFound)
}

func TestLedgerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	transactionID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		writer := services.NewMockTransactionWriter(ctrl)
		writer.EXPECT().Delete(gomock.Any(), userID, transactionID).Return(int64(0), nil)

		svc := services.NewLedgerService(nil, writer, nil, nil)
		err := svc.Delete(ctx, userID, transactionID)
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
	})

	t.Run("success", func(t *testing.T) {
		writer := services.NewMockTransactionWriter(ctrl)
		cache := services.NewMockSummaryCache(ctrl)
		writer.EXPECT().Delete(gomock.Any(), userID, transactionID).Return(int64(1), nil)
		cache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

		svc := services.NewLedgerService(nil, writer, cache, nil)
		assert.NoError(t, svc.Delete(ctx, userID, transactionID))
	})
}

func TestLedgerService_BulkDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	writer := services.NewMockTransactionWriter(ctrl)
	cache := services.NewMockSummaryCache(ctrl)

	// First call removes both rows, the repeat finds nothing to remove.
	gomock.InOrder(
		writer.EXPECT().BulkDelete(gomock.Any(), userID, ids).Return(int64(2), nil),
		writer.EXPECT().BulkDelete(gomock.Any(), userID, ids).Return(int64(0), nil),
	)
	cache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

	svc := services.NewLedgerService(nil, writer, cache, nil)

	deleted, err := svc.BulkDelete(ctx, userID, ids)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = svc.BulkDelete(ctx, userID, ids)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestLedgerService_DeleteCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing category name", func(t *testing.T) {
		svc := services.NewLedgerService(nil, services.NewMockTransactionWriter(ctrl), nil, nil)
		_, err := svc.DeleteCategory(ctx, userID, "")
		assert.ErrorIs(t, err, services.ErrMissingCategory)
	})

	t.Run("reassigns to the fallback category", func(t *testing.T) {
		writer := services.NewMockTransactionWriter(ctrl)
		writer.EXPECT().
			ReassignCategory(gomock.Any(), userID, "Food", models.FallbackCategory).
			Return(int64(3), nil)

		svc := services.NewLedgerService(nil, writer, nil, nil)
		reassigned, err := svc.DeleteCategory(ctx, userID, "Food")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), reassigned)
	})
}

func TestLedgerService_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	incomeOnly := true

	reader := services.NewMockTransactionReader(ctrl)
	reader.EXPECT().Categories(gomock.Any(), userID, &incomeOnly).Return([]string{"Salary"}, nil)

	svc := services.NewLedgerService(reader, nil, nil, nil)
	categories, err := svc.Categories(ctx, userID, &incomeOnly)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Salary"}, categories)
}
