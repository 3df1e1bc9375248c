package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the two known transaction types
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry in a user's ledger
type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"-" db:"user_id"`
	Title     string          `json:"title" db:"title"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Category  string          `json:"category" db:"category"`
	Type      TransactionType `json:"type" db:"type"`
	Date      time.Time       `json:"date" db:"date"`
	Notes     *string         `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// TransactionRequest is the payload for creating or updating a transaction
type TransactionRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes"`
}

// TransactionFilter carries the normalized listing filters. Zero values mean
// the filter is not applied; all supplied filters combine with AND.
type TransactionFilter struct {
	Search   string
	Category string
	Type     TransactionType
	DateFrom *time.Time
	DateTo   *time.Time
}

// TypeTotal is a typed aggregation row: the amount sum for one transaction type
type TypeTotal struct {
	Type  TransactionType `db:"type"`
	Total decimal.Decimal `db:"total"`
}

// CategoryTotalRow is a typed aggregation row: the amount sum for one category
type CategoryTotalRow struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// TrendEntry is the slim transaction projection used to fold the monthly trend
type TrendEntry struct {
	Amount decimal.Decimal `db:"amount"`
	Date   time.Time       `db:"date"`
	Type   TransactionType `db:"type"`
}
