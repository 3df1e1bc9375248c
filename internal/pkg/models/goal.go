package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target. Progress is derived on every read
// and never persisted.
type SavingsGoal struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"-" db:"user_id"`
	Title        string          `json:"title" db:"title"`
	TargetAmount decimal.Decimal `json:"target_amount" db:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount" db:"saved_amount"`
	TargetDate   *time.Time      `json:"target_date" db:"target_date"`
	Progress     float64         `json:"progress" db:"-"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// GoalRequest is the payload for creating or updating a savings goal
type GoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	TargetDate   string          `json:"target_date"`
}

// GoalProgress derives the saved/target ratio as a percentage clamped to
// [0, 100]. A non-positive target always yields 0.
func GoalProgress(saved, target decimal.Decimal) float64 {
	if target.Sign() <= 0 {
		return 0
	}
	progress, _ := saved.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
