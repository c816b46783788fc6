package models

// Summary aggregates a user's entire non-deleted ledger.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome" db:"total_income"`
	TotalExpenses float64 `json:"totalExpenses" db:"total_expenses"`
	Balance       float64 `json:"balance" db:"-"`
}
