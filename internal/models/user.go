package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is assigned to new users until setup is completed.
const DefaultCurrency = "USD"

// UserDB represents a user row in the database
type UserDB struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`                     // Primary key
	Email           string    `json:"email" db:"email"`                         // Unique email, login identifier
	PasswordHash    string    `json:"-" db:"password_hash"`                     // bcrypt hash
	DefaultCurrency string    `json:"default_currency" db:"default_currency"`   // Display currency chosen during setup
	IsSetupComplete bool      `json:"is_setup_complete" db:"is_setup_complete"` // Whether the user finished onboarding
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
