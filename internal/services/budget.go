package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
)

// Error variables
var (
	ErrInvalidBudget  = errors.New("budget requires a category, a positive amount, and a valid month")
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	ListWithSpent(ctx context.Context, userID uuid.UUID) ([]models.BudgetWithSpent, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	Save(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error)
	Update(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error)
	Delete(ctx context.Context, userID, budgetID uuid.UUID) (int64, error)
}

// BudgetService handles monthly category budgets.
type BudgetService struct {
	reader BudgetReader
	writer BudgetWriter
}

// NewBudgetService creates a new BudgetService instance.
func NewBudgetService(reader BudgetReader, writer BudgetWriter) *BudgetService {
	return &BudgetService{
		reader: reader,
		writer: writer,
	}
}

func validateBudget(budget models.BudgetDB) error {
	if budget.Category == "" || budget.Amount <= 0 || budget.Month < 1 || budget.Month > 12 || budget.Year < 1 {
		return ErrInvalidBudget
	}
	return nil
}

// List returns the user's budgets with their spent amounts.
func (svc *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]models.BudgetWithSpent, error) {
	budgets, err := svc.reader.ListWithSpent(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list budgets", "userID", userID, "err", err)
		return nil, err
	}
	return budgets, nil
}

// Create validates and stores a new budget.
func (svc *BudgetService) Create(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	budget.BudgetID = uuid.New()
	saved, err := svc.writer.Save(ctx, budget)
	if err != nil {
		logger.Log.Errorw("failed to save budget", "userID", budget.UserID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Update overwrites an owned budget's mutable fields.
func (svc *BudgetService) Update(ctx context.Context, budget models.BudgetDB) (*models.BudgetDB, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, budget)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBudgetNotFound
		}
		logger.Log.Errorw("failed to update budget", "userID", budget.UserID, "budgetID", budget.BudgetID, "err", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes an owned budget.
func (svc *BudgetService) Delete(ctx context.Context, userID, budgetID uuid.UUID) error {
	affected, err := svc.writer.Delete(ctx, userID, budgetID)
	if err != nil {
		logger.Log.Errorw("failed to delete budget", "userID", userID, "budgetID", budgetID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
