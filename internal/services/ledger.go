package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrInvalidPage         = errors.New("page must be at least 1")
	ErrInvalidLimit        = errors.New("limit must be at least 1")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
	ErrMissingFields       = errors.New("name and category are required")
	ErrNegativeCost        = errors.New("cost must not be negative")
	ErrMissingCategory     = errors.New("category name is required")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionReader defines read operations over the ledger.
type TransactionReader interface {
	List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, limit, offset int) ([]models.TransactionDB, int64, error)
	Summarize(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
	Categories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]string, error)
}

// TransactionWriter defines write operations over the ledger.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
	Update(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
	Delete(ctx context.Context, userID, transactionID uuid.UUID) (int64, error)
	BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	ReassignCategory(ctx context.Context, userID uuid.UUID, category, fallback string) (int64, error)
}

// SummaryCache caches per-user summaries.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
	Set(ctx context.Context, userID uuid.UUID, summary models.Summary) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LedgerService implements the transaction ledger and its query engine.
type LedgerService struct {
	readRepo    TransactionReader
	writeRepo   TransactionWriter
	cache       SummaryCache
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService. cache and kafkaWriter may be
// nil; both concerns degrade to no-ops.
func NewLedgerService(
	readRepo TransactionReader,
	writeRepo TransactionWriter,
	cache SummaryCache,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a ledger event to Kafka. Best effort.
func (s *LedgerService) publishEvent(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal ledger event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ledger event", "event_id", event.EventID, "error", err)
	}
}

// invalidateSummary drops the cached summary after a write. Best effort.
func (s *LedgerService) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate summary cache", "userID", userID, "error", err)
	}
}

// List returns one page of the user's ledger matching the filter, plus the
// total page count. An empty page is not an error.
func (s *LedgerService) List(
	ctx context.Context,
	userID uuid.UUID,
	filter models.TransactionFilter,
	page, limit int,
) ([]models.TransactionDB, int, error) {
	if page < 1 {
		return nil, 0, ErrInvalidPage
	}
	if limit < 1 {
		return nil, 0, ErrInvalidLimit
	}
	if filter.StartAt != nil && filter.EndAt != nil && filter.StartAt.After(*filter.EndAt) {
		return nil, 0, ErrInvalidDateRange
	}

	offset := (page - 1) * limit
	transactions, total, err := s.readRepo.List(ctx, userID, filter, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, 0, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return transactions, totalPages, nil
}

// Summarize aggregates the user's entire ledger, independent of any list
// filters. Served from cache when possible.
func (s *LedgerService) Summarize(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("summary cache read failed", "userID", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.readRepo.Summarize(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to summarize ledger", "userID", userID, "error", err)
		return nil, err
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, *summary); err != nil {
			logger.Log.Errorw("summary cache write failed", "userID", userID, "error", err)
		}
	}

	return summary, nil
}

// ExportCSV renders the user's entire ledger as CSV in stored order. The
// whole body is assembled in memory first, so a store failure never yields a
// truncated file.
func (s *LedgerService) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	transactions, err := s.readRepo.GetAll(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load transactions for export", "userID", userID, "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "user", "name", "category", "cost", "addedOn", "isIncome"}); err != nil {
		return nil, err
	}
	for _, txn := range transactions {
		record := []string{
			txn.TransactionID.String(),
			txn.UserID.String(),
			txn.Name,
			txn.Category,
			strconv.FormatFloat(txn.Cost, 'f', -1, 64),
			txn.AddedOn.UTC().Format(time.RFC3339),
			strconv.FormatBool(txn.IsIncome),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Create validates and stores a new transaction, then invalidates the cached
// summary and publishes a ledger event.
func (s *LedgerService) Create(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	if txn.Name == "" || txn.Category == "" {
		return nil, ErrMissingFields
	}
	if txn.Cost < 0 {
		return nil, ErrNegativeCost
	}

	txn.TransactionID = uuid.New()
	if txn.AddedOn.IsZero() {
		txn.AddedOn = time.Now()
	}

	saved, err := s.writeRepo.Save(ctx, txn)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", txn.UserID, "error", err)
		return nil, err
	}

	s.invalidateSummary(ctx, saved.UserID)
	s.publishEvent(ctx, models.LedgerEvent{
		EventID:       uuid.NewString(),
		UserID:        saved.UserID.String(),
		TransactionID: saved.TransactionID.String(),
		Action:        models.ActionCreate,
		Amount:        saved.Cost,
		IsIncome:      saved.IsIncome,
		OccurredAt:    time.Now().Unix(),
	})

	return saved, nil
}

// Update overwrites an owned transaction's mutable fields.
func (s *LedgerService) Update(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	if txn.Name == "" || txn.Category == "" {
		return nil, ErrMissingFields
	}
	if txn.Cost < 0 {
		return nil, ErrNegativeCost
	}

	updated, err := s.writeRepo.Update(ctx, txn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to update transaction", "userID", txn.UserID, "transactionID", txn.TransactionID, "error", err)
		return nil, err
	}

	s.invalidateSummary(ctx, updated.UserID)
	s.publishEvent(ctx, models.LedgerEvent{
		EventID:       uuid.NewString(),
		UserID:        updated.UserID.String(),
		TransactionID: updated.TransactionID.String(),
		Action:        models.ActionUpdate,
		Amount:        updated.Cost,
		IsIncome:      updated.IsIncome,
		OccurredAt:    time.Now().Unix(),
	})

	return updated, nil
}

// Delete soft-deletes a single owned transaction.
func (s *LedgerService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	affected, err := s.writeRepo.Delete(ctx, userID, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to delete transaction", "userID", userID, "transactionID", transactionID, "error", err)
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	s.invalidateSummary(ctx, userID)
	s.publishEvent(ctx, models.LedgerEvent{
		EventID:       uuid.NewString(),
		UserID:        userID.String(),
		TransactionID: transactionID.String(),
		Action:        models.ActionDelete,
		OccurredAt:    time.Now().Unix(),
	})

	return nil
}

// BulkDelete soft-deletes every owned transaction in ids, best effort.
// Unknown and foreign ids are ignored, which also makes the operation
// idempotent: a repeated call deletes nothing and returns zero.
func (s *LedgerService) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	deleted, err := s.writeRepo.BulkDelete(ctx, userID, ids)
	if err != nil {
		logger.Log.Errorw("failed to bulk delete transactions", "userID", userID, "error", err)
		return 0, err
	}

	if deleted > 0 {
		s.invalidateSummary(ctx, userID)
		s.publishEvent(ctx, models.LedgerEvent{
			EventID:    uuid.NewString(),
			UserID:     userID.String(),
			Action:     models.ActionBulkDelete,
			Count:      deleted,
			OccurredAt: time.Now().Unix(),
		})
	}

	return deleted, nil
}

// DeleteCategory relabels every owned transaction of the category to the
// fallback category. Transactions are never deleted by this operation.
func (s *LedgerService) DeleteCategory(ctx context.Context, userID uuid.UUID, category string) (int64, error) {
	if category == "" {
		return 0, ErrMissingCategory
	}

	reassigned, err := s.writeRepo.ReassignCategory(ctx, userID, category, models.FallbackCategory)
	if err != nil {
		logger.Log.Errorw("failed to reassign category", "userID", userID, "category", category, "error", err)
		return 0, err
	}

	if reassigned > 0 {
		s.publishEvent(ctx, models.LedgerEvent{
			EventID:    uuid.NewString(),
			UserID:     userID.String(),
			Action:     models.ActionCategoryReassigned,
			Count:      reassigned,
			OccurredAt: time.Now().Unix(),
		})
	}

	return reassigned, nil
}

// Categories returns the distinct category names in use by the user,
// optionally restricted to income or expense transactions.
func (s *LedgerService) Categories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]string, error) {
	categories, err := s.readRepo.Categories(ctx, userID, isIncome)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "userID", userID, "error", err)
		return nil, err
	}
	return categories, nil
}
