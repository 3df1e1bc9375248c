package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// CreateGoal inserts a new savings goal
func (r *LedgerRepo) CreateGoal(ctx context.Context, goal *models.SavingsGoal) error {
	goal.ID = uuid.New()
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	query := `
		INSERT INTO savings_goals (id, user_id, title, target_amount, saved_amount,
			target_date, created_at, updated_at
		) VALUES (:id, :user_id, :title, :target_amount, :saved_amount,
			:target_date, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, goal)
	if err != nil {
		return fmt.Errorf("failed to insert savings goal: %w", err)
	}

	return nil
}

// GetGoal retrieves a savings goal by ID, scoped to its owner
func (r *LedgerRepo) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, title, target_amount, saved_amount, target_date, created_at, updated_at
		FROM savings_goals
		WHERE id = $1 AND user_id = $2
	`

	var goal models.SavingsGoal
	err := r.db.GetContext(ctx, &goal, query, goalID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}

	return &goal, nil
}

// ListGoals returns the user's savings goals, newest first
func (r *LedgerRepo) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, title, target_amount, saved_amount, target_date, created_at, updated_at
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	goals := []models.SavingsGoal{}
	if err := r.db.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	return goals, nil
}

// UpdateGoal overwrites the mutable fields of a savings goal
func (r *LedgerRepo) UpdateGoal(ctx context.Context, goal *models.SavingsGoal) error {
	goal.UpdatedAt = time.Now()

	query := `
		UPDATE savings_goals
		SET title = :title, target_amount = :target_amount, saved_amount = :saved_amount,
			target_date = :target_date, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, goal)
	if err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a savings goal owned by the given user
func (r *LedgerRepo) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	query := `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}
