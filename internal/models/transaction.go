package models

import (
	"time"

	"github.com/google/uuid"
)

// FallbackCategory receives the transactions of a deleted category.
// Deleting a category never deletes transactions, it only relabels them.
const FallbackCategory = "Miscellaneous"

// TransactionDB represents a ledger row in the database
type TransactionDB struct {
	TransactionID uuid.UUID `json:"id" db:"transaction_id"`   // Unique transaction identifier
	UserID        uuid.UUID `json:"user" db:"user_id"`        // Owner, immutable after creation
	Name          string    `json:"name" db:"name"`           // Free-form label
	Category      string    `json:"category" db:"category"`   // Case-sensitive category name
	Cost          float64   `json:"cost" db:"cost"`           // Non-negative amount in the user's currency
	AddedOn       time.Time `json:"addedOn" db:"added_on"`    // Transaction date, distinct from created_at
	IsIncome      bool      `json:"isIncome" db:"is_income"`  // true = income, false = expense
	Note          string    `json:"note,omitempty" db:"note"` // Optional free-form note
	IsDeleted     bool      `json:"-" db:"is_deleted"`        // Soft-delete flag, hidden from API payloads
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TransactionFilter narrows a ledger listing. Nil fields are not applied.
type TransactionFilter struct {
	Search   *string    // Case-insensitive substring match on name or category
	IsIncome *bool      // Restrict to income (true) or expense (false)
	Category *string    // Exact category match
	StartAt  *time.Time // Inclusive lower bound on added_on
	EndAt    *time.Time // Inclusive upper bound on added_on
}
