package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
)

type RecurringReadRepository struct {
	db *sqlx.DB
}

func NewRecurringReadRepository(db *sqlx.DB) *RecurringReadRepository {
	return &RecurringReadRepository{db: db}
}

// ListByUser returns the user's recurring templates ordered by due date.
func (r *RecurringReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecurringDB, error) {
	const query = `
		SELECT recurring_id, user_id, name, category, amount, is_income, frequency, next_due_date, created_at, updated_at
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY next_due_date ASC
	`

	recurring := []models.RecurringDB{}
	err := r.db.SelectContext(ctx, &recurring, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_rows", len(recurring),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recurring, nil
}

// ListDue returns every template across all users whose next_due_date has
// passed. Consumed by the scheduler.
func (r *RecurringReadRepository) ListDue(ctx context.Context, now time.Time) ([]models.RecurringDB, error) {
	const query = `
		SELECT recurring_id, user_id, name, category, amount, is_income, frequency, next_due_date, created_at, updated_at
		FROM recurring_transactions
		WHERE next_due_date <= $1
		ORDER BY next_due_date ASC
	`

	recurring := []models.RecurringDB{}
	err := r.db.SelectContext(ctx, &recurring, query, now)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result_rows", len(recurring),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recurring, nil
}

type RecurringWriteRepository struct {
	db *sqlx.DB
}

func NewRecurringWriteRepository(db *sqlx.DB) *RecurringWriteRepository {
	return &RecurringWriteRepository{db: db}
}

// Save inserts a new recurring template and returns the stored row.
func (r *RecurringWriteRepository) Save(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error) {
	const query = `
		INSERT INTO recurring_transactions (recurring_id, user_id, name, category, amount, is_income, frequency, next_due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING recurring_id, user_id, name, category, amount, is_income, frequency, next_due_date, created_at, updated_at
	`
	args := []any{rec.RecurringID, rec.UserID, rec.Name, rec.Category, rec.Amount, rec.IsIncome, rec.Frequency, rec.NextDueDate}

	var saved models.RecurringDB
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

// Update overwrites the mutable fields of an owned template and returns the
// stored row. sql.ErrNoRows signals a missing or non-owned id.
func (r *RecurringWriteRepository) Update(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error) {
	const query = `
		UPDATE recurring_transactions
		SET name = $3, category = $4, amount = $5, is_income = $6, frequency = $7, next_due_date = $8, updated_at = NOW()
		WHERE recurring_id = $1 AND user_id = $2
		RETURNING recurring_id, user_id, name, category, amount, is_income, frequency, next_due_date, created_at, updated_at
	`
	args := []any{rec.RecurringID, rec.UserID, rec.Name, rec.Category, rec.Amount, rec.IsIncome, rec.Frequency, rec.NextDueDate}

	var updated models.RecurringDB
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

// Delete removes an owned template. Returns the number of rows removed.
func (r *RecurringWriteRepository) Delete(ctx context.Context, userID, recurringID uuid.UUID) (int64, error) {
	const query = `DELETE FROM recurring_transactions WHERE recurring_id = $1 AND user_id = $2`
	args := []any{recurringID, userID}

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

// AdvanceDueDate moves a template's next_due_date forward after it has been
// materialized into a real transaction.
func (r *RecurringWriteRepository) AdvanceDueDate(ctx context.Context, recurringID uuid.UUID, next time.Time) error {
	const query = `
		UPDATE recurring_transactions
		SET next_due_date = $2, updated_at = NOW()
		WHERE recurring_id = $1
	`
	args := []any{recurringID, next}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
