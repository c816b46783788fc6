package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
)

type BudgetReadRepository struct {
	db *sqlx.DB
}

func NewBudgetReadRepository(db *sqlx.DB) *BudgetReadRepository {
	return &BudgetReadRepository{db: db}
}

// ListWithSpent returns the user's budgets, each joined with the sum of
// non-deleted expense transactions in its category and month.
func (r *BudgetReadRepository) ListWithSpent(ctx context.Context, userID uuid.UUID) ([]models.BudgetWithSpent, error) {
	const query = `
		SELECT b.budget_id, b.user_id, b.category, b.amount, b.month, b.year, b.created_at, b.updated_at,
		       COALESCE((
		           SELECT SUM(t.cost)
		           FROM transactions t
		           WHERE t.user_id = b.user_id
		             AND t.category = b.category
		             AND t.is_income = FALSE
		             AND t.is_deleted = FALSE
		             AND EXTRACT(MONTH FROM t.added_on) = b.month
		             AND EXTRACT(YEAR FROM t.added_on) = b.year
		       ), 0) AS spent
		FROM budgets b
		WHERE b.user_id = $1
		ORDER BY b.year DESC, b.month DESC, b.category ASC
	`

	budgets := []models.BudgetWithSpent{}
	err := r.db.SelectContext(ctx, &budgets, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_rows", len(budgets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return budgets, nil
}

type BudgetWriteRepository struct {
	db *sqlx.DB
}

func NewBudgetWriteRepository(db *sqlx.DB) *BudgetWriteRepository {
	return &BudgetWriteRepository{db: db}
}

// Save inserts a new budget and returns the stored row.
func (r *BudgetWriteRepository) Save(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error) {
	const query = `
		INSERT INTO budgets (budget_id, user_id, category, amount, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING budget_id, user_id, category, amount, month, year, created_at, updated_at
	`
	args := []any{budget.BudgetID, budget.UserID, budget.Category, budget.Amount, budget.Month, budget.Year}

	var saved models.BudgetDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the mutable fields of an owned budget and returns the
// stored row. sql.ErrNoRows signals a missing or non-owned id.
func (r *BudgetWriteRepository) Update(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error) {
	const query = `
		UPDATE budgets
		SET category = $3, amount = $4, month = $5, year = $6, updated_at = NOW()
		WHERE budget_id = $1 AND user_id = $2
		RETURNING budget_id, user_id, category, amount, month, year, created_at, updated_at
	`
	args := []any{budget.BudgetID, budget.UserID, budget.Category, budget.Amount, budget.Month, budget.Year}

	var updated models.BudgetDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an owned budget. Returns the number of rows removed.
func (r *BudgetWriteRepository) Delete(ctx context.Context, userID, budgetID uuid.UUID) (int64, error) {
	const query = `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2`
	args := []any{budgetID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", affected,
		"error", err,
	)

	return affected, err
}
