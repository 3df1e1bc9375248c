package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

const (
	minGoalTitleLength = 2
	maxGoalTitleLength = 80
)

// ListGoals returns the user's savings goals with progress computed
func (u *LedgerUC) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	goals, err := u.ledgerRepo.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	for i := range goals {
		goals[i].Progress = models.GoalProgress(goals[i].SavedAmount, goals[i].TargetAmount)
	}

	return goals, nil
}

// CreateGoal validates and stores a new savings goal
func (u *LedgerUC) CreateGoal(ctx context.Context, userID uuid.UUID, req *models.GoalRequest) (*models.SavingsGoal, error) {
	goal, err := buildGoal(userID, req)
	if err != nil {
		return nil, err
	}

	if err := u.ledgerRepo.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	goal.Progress = models.GoalProgress(goal.SavedAmount, goal.TargetAmount)
	u.publishGoalEvent(ctx, userID, goal.ID, constants.ActionCreated)

	return goal, nil
}

// UpdateGoal validates and overwrites an existing savings goal owned by the user
func (u *LedgerUC) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *models.GoalRequest) (*models.SavingsGoal, error) {
	existing, err := u.ledgerRepo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal, err := buildGoal(userID, req)
	if err != nil {
		return nil, err
	}
	goal.ID = existing.ID
	goal.CreatedAt = existing.CreatedAt

	if err := u.ledgerRepo.UpdateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	goal.Progress = models.GoalProgress(goal.SavedAmount, goal.TargetAmount)
	u.publishGoalEvent(ctx, userID, goalID, constants.ActionUpdated)

	return goal, nil
}

// DeleteGoal removes a savings goal owned by the user
func (u *LedgerUC) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	if err := u.ledgerRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		return err
	}

	u.publishGoalEvent(ctx, userID, goalID, constants.ActionDeleted)

	return nil
}

func buildGoal(userID uuid.UUID, req *models.GoalRequest) (*models.SavingsGoal, error) {
	title := strings.TrimSpace(req.Title)
	if len(title) < minGoalTitleLength || len(title) > maxGoalTitleLength {
		return nil, fmt.Errorf("%w: goal title must be between %d and %d characters",
			apperrors.ErrValidation, minGoalTitleLength, maxGoalTitleLength)
	}

	if req.TargetAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: target amount must be more than 0", apperrors.ErrValidation)
	}
	if req.SavedAmount.Sign() < 0 {
		return nil, fmt.Errorf("%w: saved amount must not be negative", apperrors.ErrValidation)
	}

	var targetDate *time.Time
	if deadline := strings.TrimSpace(req.TargetDate); deadline != "" {
		parsed, err := parseTransactionDate(deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: target date is invalid", apperrors.ErrValidation)
		}
		targetDate = &parsed
	}

	return &models.SavingsGoal{
		UserID:       userID,
		Title:        title,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		TargetDate:   targetDate,
	}, nil
}

func (u *LedgerUC) publishGoalEvent(ctx context.Context, userID, goalID uuid.UUID, action string) {
	event := &models.LedgerEvent{
		UserID:     userID,
		Entity:     "goal",
		Action:     action,
		EntityID:   goalID,
		OccurredAt: time.Now().UTC(),
	}

	if err := u.ledgerGW.PublishGoalEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish goal event",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.String("action", action),
		)
	}
}
