package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/teambition/rrule-go"
)

// Error variables
var (
	ErrInvalidRecurring  = errors.New("recurring transaction requires a name, a category, and a positive amount")
	ErrInvalidFrequency  = errors.New("frequency must be daily, weekly, monthly, or yearly")
	ErrRecurringNotFound = errors.New("recurring transaction not found")
	errUnknownFrequency  = errors.New("unknown frequency")
)

// RecurringReader defines read operations for recurring templates.
type RecurringReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecurringDB, error)
	ListDue(ctx context.Context, now time.Time) ([]models.RecurringDB, error)
}

// RecurringWriter defines write operations for recurring templates.
type RecurringWriter interface {
	Save(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error)
	Update(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error)
	Delete(ctx context.Context, userID, recurringID uuid.UUID) (int64, error)
	AdvanceDueDate(ctx context.Context, recurringID uuid.UUID, next time.Time) error
}

// TransactionSaver materializes due templates into real ledger rows.
type TransactionSaver interface {
	Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
}

// RecurringService handles recurring transaction templates and their
// materialization into the ledger.
type RecurringService struct {
	reader    RecurringReader
	writer    RecurringWriter
	txnWriter TransactionSaver
	cache     SummaryCache
}

// NewRecurringService creates a new RecurringService. cache may be nil.
func NewRecurringService(
	reader RecurringReader,
	writer RecurringWriter,
	txnWriter TransactionSaver,
	cache SummaryCache,
) *RecurringService {
	return &RecurringService{
		reader:    reader,
		writer:    writer,
		txnWriter: txnWriter,
		cache:     cache,
	}
}

func validateRecurring(rec models.RecurringDB) error {
	if rec.Name == "" || rec.Category == "" || rec.Amount <= 0 {
		return ErrInvalidRecurring
	}
	if !models.ValidFrequency(rec.Frequency) {
		return ErrInvalidFrequency
	}
	return nil
}

func rruleFrequency(frequency string) (rrule.Frequency, error) {
	switch frequency {
	case models.FrequencyDaily:
		return rrule.DAILY, nil
	case models.FrequencyWeekly:
		return rrule.WEEKLY, nil
	case models.FrequencyMonthly:
		return rrule.MONTHLY, nil
	case models.FrequencyYearly:
		return rrule.YEARLY, nil
	}
	return 0, errUnknownFrequency
}

// nextOccurrence evaluates the template's frequency as an RFC 5545 rule and
// returns the first occurrence strictly after the given due date. Monthly and
// yearly rules keep the day-of-month semantics of the recurrence standard.
func nextOccurrence(frequency string, due time.Time) (time.Time, error) {
	freq, err := rruleFrequency(frequency)
	if err != nil {
		return time.Time{}, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: due})
	if err != nil {
		return time.Time{}, err
	}

	next := rule.After(due, false)
	if next.IsZero() {
		return time.Time{}, errors.New("no next occurrence")
	}
	return next, nil
}

// List returns the user's recurring templates.
func (svc *RecurringService) List(ctx context.Context, userID uuid.UUID) ([]models.RecurringDB, error) {
	recurring, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list recurring transactions", "userID", userID, "err", err)
		return nil, err
	}
	return recurring, nil
}

// Create validates and stores a new recurring template.
func (svc *RecurringService) Create(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error) {
	if err := validateRecurring(rec); err != nil {
		return nil, err
	}
	if rec.NextDueDate.IsZero() {
		return nil, ErrInvalidRecurring
	}

	rec.RecurringID = uuid.New()
	saved, err := svc.writer.Save(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to save recurring transaction", "userID", rec.UserID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Update overwrites an owned template's mutable fields.
func (svc *RecurringService) Update(ctx context.Context, rec models.RecurringDB) (*models.RecurringDB, error) {
	if err := validateRecurring(rec); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecurringNotFound
		}
		logger.Log.Errorw("failed to update recurring transaction", "userID", rec.UserID, "recurringID", rec.RecurringID, "err", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes an owned template.
func (svc *RecurringService) Delete(ctx context.Context, userID, recurringID uuid.UUID) error {
	affected, err := svc.writer.Delete(ctx, userID, recurringID)
	if err != nil {
		logger.Log.Errorw("failed to delete recurring transaction", "userID", userID, "recurringID", recurringID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrRecurringNotFound
	}
	return nil
}

// ProcessDue materializes every due template into a real transaction and
// advances its due date. One occurrence is processed per template per call;
// a template that is still overdue is picked up again on the next tick.
// Returns the number of templates processed.
func (svc *RecurringService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	due, err := svc.reader.ListDue(ctx, now)
	if err != nil {
		logger.Log.Errorw("failed to list due recurring transactions", "err", err)
		return 0, err
	}

	processed := 0
	for _, rec := range due {
		txn := models.TransactionDB{
			TransactionID: uuid.New(),
			UserID:        rec.UserID,
			Name:          rec.Name,
			Category:      rec.Category,
			Cost:          rec.Amount,
			AddedOn:       rec.NextDueDate,
			IsIncome:      rec.IsIncome,
			Note:          "Recurring transaction",
		}
		if _, err := svc.txnWriter.Save(ctx, txn); err != nil {
			logger.Log.Errorw("failed to materialize recurring transaction",
				"recurringID", rec.RecurringID, "err", err)
			continue
		}

		next, err := nextOccurrence(rec.Frequency, rec.NextDueDate)
		if err != nil {
			logger.Log.Errorw("failed to compute next occurrence",
				"recurringID", rec.RecurringID, "frequency", rec.Frequency, "err", err)
			continue
		}
		if err := svc.writer.AdvanceDueDate(ctx, rec.RecurringID, next); err != nil {
			logger.Log.Errorw("failed to advance due date",
				"recurringID", rec.RecurringID, "err", err)
			continue
		}

		if svc.cache != nil {
			if err := svc.cache.Invalidate(ctx, rec.UserID); err != nil {
				logger.Log.Errorw("failed to invalidate summary cache", "userID", rec.UserID, "err", err)
			}
		}
		processed++
	}

	return processed, nil
}
