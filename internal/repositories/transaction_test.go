package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/paisable/paisable/internal/models"
)

func seedTransaction(t *testing.T, repo *TransactionWriteRepository, userID uuid.UUID, name, category string, cost float64, addedOn time.Time, isIncome bool) models.TransactionDB {
	t.Helper()

	saved, err := repo.Save(context.Background(), models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Name:          name,
		Category:      category,
		Cost:          cost,
		AddedOn:       addedOn,
		IsIncome:      isIncome,
	})
	assert.NoError(t, err)
	return *saved
}

func TestTransactionRepository_ListFilters(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	otherUser := uuid.New()

	sep := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	oct := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)

	seedTransaction(t, writeRepo, userID, "Salary", "Income", 5000, sep, true)
	seedTransaction(t, writeRepo, userID, "Groceries", "Food", 120, sep.Add(time.Hour), false)
	seedTransaction(t, writeRepo, userID, "Coffee beans", "Food", 18, oct, false)
	seedTransaction(t, writeRepo, otherUser, "Foreign row", "Food", 99, sep, false)

	t.Run("unfiltered returns the user's rows only", func(t *testing.T) {
		rows, total, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, rows, 3)
		for _, row := range rows {
			assert.Equal(t, userID, row.UserID)
		}
	})

	t.Run("ordered by added_on descending", func(t *testing.T) {
		rows, _, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, "Coffee beans", rows[0].Name)
		assert.Equal(t, "Salary", rows[2].Name)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		search := "coffee"
		rows, total, err := readRepo.List(ctx, userID, models.TransactionFilter{Search: &search}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Coffee beans", rows[0].Name)
	})

	t.Run("search matches category too", func(t *testing.T) {
		search := "foo"
		_, total, err := readRepo.List(ctx, userID, models.TransactionFilter{Search: &search}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("isIncome filter", func(t *testing.T) {
		income := true
		rows, total, err := readRepo.List(ctx, userID, models.TransactionFilter{IsIncome: &income}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Salary", rows[0].Name)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		category := "Food"
		_, total, err := readRepo.List(ctx, userID, models.TransactionFilter{Category: &category}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
		_, total, err := readRepo.List(ctx, userID, models.TransactionFilter{StartAt: &start, EndAt: &end}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("pagination slices the ordered rows", func(t *testing.T) {
		rows, total, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 2, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Salary", rows[0].Name)
	})

	t.Run("page beyond the data is empty, not an error", func(t *testing.T) {
		rows, total, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 10, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})
}

func TestTransactionRepository_Summarize(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("empty ledger sums to zero", func(t *testing.T) {
		summary, err := readRepo.Summarize(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.TotalIncome)
		assert.Equal(t, 0.0, summary.TotalExpenses)
	})

	seedTransaction(t, writeRepo, userID, "Salary", "Income", 5000, now, true)
	seedTransaction(t, writeRepo, userID, "Bonus", "Income", 500, now, true)
	seedTransaction(t, writeRepo, userID, "Groceries", "Food", 1000, now, false)

	t.Run("aggregates income and expenses separately", func(t *testing.T) {
		summary, err := readRepo.Summarize(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 5500.0, summary.TotalIncome)
		assert.Equal(t, 1000.0, summary.TotalExpenses)
	})

	t.Run("deleted rows are excluded", func(t *testing.T) {
		victim := seedTransaction(t, writeRepo, userID, "Refund", "Income", 100, now, true)
		affected, err := writeRepo.Delete(ctx, userID, victim.TransactionID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		summary, err := readRepo.Summarize(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 5500.0, summary.TotalIncome)
	})
}

func TestTransactionRepository_GetAll_StoredOrder(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()

	// Newest added_on first in insertion order, so stored order and date
	// order disagree; GetAll must keep insertion order.
	seedTransaction(t, writeRepo, userID, "Later date", "Food", 10, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), false)
	seedTransaction(t, writeRepo, userID, "Earlier date", "Food", 20, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), false)

	rows, err := readRepo.GetAll(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Later date", rows[0].Name)
	assert.Equal(t, "Earlier date", rows[1].Name)
}

func TestTransactionRepository_Categories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()

	seedTransaction(t, writeRepo, userID, "Salary", "Income", 5000, now, true)
	seedTransaction(t, writeRepo, userID, "Groceries", "Food", 100, now, false)
	seedTransaction(t, writeRepo, userID, "Lunch", "Food", 15, now, false)

	t.Run("distinct names for both kinds", func(t *testing.T) {
		categories, err := readRepo.Categories(ctx, userID, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Food", "Income"}, categories)
	})

	t.Run("restricted to income", func(t *testing.T) {
		income := true
		categories, err := readRepo.Categories(ctx, userID, &income)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Income"}, categories)
	})

	t.Run("restricted to expenses", func(t *testing.T) {
		income := false
		categories, err := readRepo.Categories(ctx, userID, &income)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Food"}, categories)
	})
}

func TestTransactionWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()

	stored := seedTransaction(t, writeRepo, userID, "Groceries", "Food", 100, now, false)

	t.Run("overwrites mutable fields", func(t *testing.T) {
		stored.Name = "Weekly groceries"
		stored.Cost = 110
		updated, err := writeRepo.Update(ctx, stored)
		assert.NoError(t, err)
		assert.Equal(t, "Weekly groceries", updated.Name)
		assert.Equal(t, 110.0, updated.Cost)
	})

	t.Run("unknown id yields sql.ErrNoRows", func(t *testing.T) {
		missing := stored
		missing.TransactionID = uuid.New()
		_, err := writeRepo.Update(ctx, missing)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("foreign owner yields sql.ErrNoRows", func(t *testing.T) {
		foreign := stored
		foreign.UserID = uuid.New()
		_, err := writeRepo.Update(ctx, foreign)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestTransactionWriteRepository_BulkDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	otherUser := uuid.New()
	now := time.Now().UTC()

	first := seedTransaction(t, writeRepo, userID, "One", "Food", 1, now, false)
	second := seedTransaction(t, writeRepo, userID, "Two", "Food", 2, now, false)
	foreign := seedTransaction(t, writeRepo, otherUser, "Foreign", "Food", 3, now, false)

	ids := []uuid.UUID{first.TransactionID, second.TransactionID, foreign.TransactionID, uuid.New()}

	t.Run("deletes owned rows, skips foreign and unknown ids", func(t *testing.T) {
		affected, err := writeRepo.BulkDelete(ctx, userID, ids)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		_, total, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)

		// The foreign row is untouched
		_, total, err = readRepo.List(ctx, otherUser, models.TransactionFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("repeat call deletes nothing", func(t *testing.T) {
		affected, err := writeRepo.BulkDelete(ctx, userID, ids)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("empty id set is a no-op", func(t *testing.T) {
		affected, err := writeRepo.BulkDelete(ctx, userID, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestTransactionWriteRepository_ReassignCategory(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewTransactionReadRepository(db)
	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now().UTC()

	seedTransaction(t, writeRepo, userID, "Groceries", "Food", 100, now, false)
	seedTransaction(t, writeRepo, userID, "Lunch", "Food", 15, now, false)
	seedTransaction(t, writeRepo, userID, "Rent", "Bills", 1200, now, false)

	affected, err := writeRepo.ReassignCategory(ctx, userID, "Food", models.FallbackCategory)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	categories, err := readRepo.Categories(ctx, userID, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Bills", models.FallbackCategory}, categories)

	// Rows themselves survive the relabel
	_, total, err := readRepo.List(ctx, userID, models.TransactionFilter{}, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
