package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
)

// TransactionReadRepository handles ledger read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// filterClause is shared by List and Count so both see the same row set.
// Nil arguments disable the corresponding predicate.
const filterClause = `
	user_id = $1
	AND is_deleted = FALSE
	AND ($2::TEXT IS NULL OR name ILIKE '%' || $2 || '%' OR category ILIKE '%' || $2 || '%')
	AND ($3::BOOLEAN IS NULL OR is_income = $3)
	AND ($4::TEXT IS NULL OR category = $4)
	AND ($5::TIMESTAMPTZ IS NULL OR added_on >= $5)
	AND ($6::TIMESTAMPTZ IS NULL OR added_on <= $6)
`

// List returns one page of the user's ledger plus the total number of
// matching rows. Ordered by added_on descending with transaction_id
// descending as the tie-break, so pagination is deterministic.
func (r *TransactionReadRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter models.TransactionFilter,
	limit, offset int,
) ([]models.TransactionDB, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM transactions WHERE ` + filterClause

	const listQuery = `
		SELECT transaction_id, user_id, name, category, cost, added_on, is_income, note, is_deleted, created_at, updated_at
		FROM transactions
		WHERE ` + filterClause + `
		ORDER BY added_on DESC, transaction_id DESC
		LIMIT $7 OFFSET $8
	`

	filterArgs := []any{userID, filter.Search, filter.IsIncome, filter.Category, filter.StartAt, filter.EndAt}

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, filterArgs...); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(countQuery), " "),
			"args", filterArgs,
			"error", err,
		)
		return nil, 0, err
	}

	transactions := []models.TransactionDB{}
	err := r.db.SelectContext(ctx, &transactions, listQuery, append(filterArgs, limit, offset)...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", filterArgs,
		"result_rows", len(transactions),
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// Summarize aggregates the user's entire non-deleted ledger in one statement,
// so concurrent writers never produce a half-counted row.
func (r *TransactionReadRepository) Summarize(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	const query = `
		SELECT
			COALESCE(SUM(cost) FILTER (WHERE is_income), 0)     AS total_income,
			COALESCE(SUM(cost) FILTER (WHERE NOT is_income), 0) AS total_expenses
		FROM transactions
		WHERE user_id = $1 AND is_deleted = FALSE
	`

	var summary models.Summary
	err := r.db.GetContext(ctx, &summary, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", summary,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetAll returns every non-deleted transaction of the user in insertion
// order. Used by the CSV export, which must not re-sort.
func (r *TransactionReadRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, name, category, cost, added_on, is_income, note, is_deleted, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND is_deleted = FALSE
		ORDER BY created_at ASC, transaction_id ASC
	`

	transactions := []models.TransactionDB{}
	err := r.db.SelectContext(ctx, &transactions, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_rows", len(transactions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Categories returns the distinct category names in use by the user.
// A nil isIncome returns categories of both kinds.
func (r *TransactionReadRepository) Categories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM transactions
		WHERE user_id = $1
		  AND is_deleted = FALSE
		  AND ($2::BOOLEAN IS NULL OR is_income = $2)
		ORDER BY category
	`

	categories := []string{}
	err := r.db.SelectContext(ctx, &categories, query, userID, isIncome)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, isIncome},
		"result", categories,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// TransactionWriteRepository handles ledger write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new transaction and returns the stored row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (transaction_id, user_id, name, category, cost, added_on, is_income, note, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW(), NOW())
		RETURNING transaction_id, user_id, name, category, cost, added_on, is_income, note, is_deleted, created_at, updated_at
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Name, txn.Category, txn.Cost, txn.AddedOn, txn.IsIncome, txn.Note}

	var saved models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

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

// Update overwrites the mutable fields of an owned transaction and returns
// the stored row. sql.ErrNoRows signals a missing or non-owned id.
func (r *TransactionWriteRepository) Update(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	const query = `
		UPDATE transactions
		SET name = $3, category = $4, cost = $5, added_on = $6, is_income = $7, note = $8, updated_at = NOW()
		WHERE transaction_id = $1 AND user_id = $2 AND is_deleted = FALSE
		RETURNING transaction_id, user_id, name, category, cost, added_on, is_income, note, is_deleted, created_at, updated_at
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Name, txn.Category, txn.Cost, txn.AddedOn, txn.IsIncome, txn.Note}

	var updated models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

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

// Delete soft-deletes a single owned transaction. Returns the number of rows
// affected: zero means the id was missing, foreign, or already deleted.
func (r *TransactionWriteRepository) Delete(ctx context.Context, userID, transactionID uuid.UUID) (int64, error) {
	const query = `
		UPDATE transactions
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE transaction_id = $1 AND user_id = $2 AND is_deleted = FALSE
	`
	args := []any{transactionID, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

// BulkDelete soft-deletes every owned, not-yet-deleted transaction in ids.
// Foreign and unknown ids are skipped silently.
func (r *TransactionWriteRepository) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`
		UPDATE transactions
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE user_id = ? AND is_deleted = FALSE AND transaction_id IN (?)
	`, userID, ids)
	if err != nil {
		return 0, err
	}

	executor := r.executor(ctx)
	query = executor.Rebind(query)

	res, err := executor.ExecContext(ctx, query, args...)
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

// ReassignCategory relabels every owned transaction in the given category to
// the fallback category. Returns the number of rows relabelled.
func (r *TransactionWriteRepository) ReassignCategory(ctx context.Context, userID uuid.UUID, category, fallback string) (int64, error) {
	const query = `
		UPDATE transactions
		SET category = $3, updated_at = NOW()
		WHERE user_id = $1 AND category = $2 AND is_deleted = FALSE
	`
	args := []any{userID, category, fallback}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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
