package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported recurrence frequencies
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// ValidFrequency reports whether f is one of the supported frequencies.
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringDB represents a recurring transaction template. The scheduler
// materializes it into a real ledger row each time next_due_date passes.
type RecurringDB struct {
	RecurringID uuid.UUID `json:"id" db:"recurring_id"`
	UserID      uuid.UUID `json:"user" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Amount      float64   `json:"amount" db:"amount"`
	IsIncome    bool      `json:"isIncome" db:"is_income"`
	Frequency   string    `json:"frequency" db:"frequency"`
	NextDueDate time.Time `json:"nextDueDate" db:"next_due_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
