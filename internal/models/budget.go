package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetDB represents a monthly spending limit for one category
type BudgetDB struct {
	BudgetID  uuid.UUID `json:"id" db:"budget_id"`
	UserID    uuid.UUID `json:"user" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Amount    float64   `json:"amount" db:"amount"`
	Month     int       `json:"month" db:"month"` // 1..12
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BudgetWithSpent is a budget row joined with the sum of matching expenses.
type BudgetWithSpent struct {
	BudgetDB
	Spent float64 `json:"spent" db:"spent"`
}
