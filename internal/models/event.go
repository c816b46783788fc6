package models

// Ledger event actions published to Kafka.
const (
	ActionCreate             = "create"
	ActionUpdate             = "update"
	ActionDelete             = "delete"
	ActionBulkDelete         = "bulk_delete"
	ActionCategoryReassigned = "category_reassigned"
)

// LedgerEvent describes a mutation of a user's ledger. Published best-effort;
// a failed publish never fails the originating request.
type LedgerEvent struct {
	EventID       string  `json:"event_id"`                 // Unique event identifier
	UserID        string  `json:"user_id"`                  // Owner of the mutated ledger
	TransactionID string  `json:"transaction_id,omitempty"` // Affected transaction, empty for bulk actions
	Action        string  `json:"action"`                   // One of the Action* constants
	Amount        float64 `json:"amount,omitempty"`         // Cost of the affected transaction
	IsIncome      bool    `json:"is_income,omitempty"`      // Direction of the affected transaction
	Count         int64   `json:"count,omitempty"`          // Affected rows for bulk actions
	OccurredAt    int64   `json:"occurred_at"`              // Unix timestamp (seconds)
}
