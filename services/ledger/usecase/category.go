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
	minCategoryNameLength = 2
	maxCategoryNameLength = 40
)

// ListCategories returns the fixed predefined names together with the user's
// custom categories sorted by name.
func (u *LedgerUC) ListCategories(ctx context.Context, userID uuid.UUID) (*models.CategoryList, error) {
	custom, err := u.ledgerRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &models.CategoryList{
		Predefined: constants.PredefinedCategories,
		Custom:     custom,
	}, nil
}

// CreateCategory adds a custom category for the user. The name must not
// collide with a predefined name or another custom category, compared
// case-insensitively after trimming.
func (u *LedgerUC) CreateCategory(ctx context.Context, userID uuid.UUID, req *models.CategoryRequest) (*models.Category, error) {
	name, err := validateCategoryName(req.Name)
	if err != nil {
		return nil, err
	}

	if isPredefinedCategory(name) {
		return nil, apperrors.ErrCategoryReserved
	}

	custom, err := u.ledgerRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range custom {
		if strings.EqualFold(c.Name, name) {
			return nil, apperrors.ErrCategoryExists
		}
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
	}
	if err := u.ledgerRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	u.publishCategoryEvent(ctx, userID, category.ID, constants.ActionCreated)

	return category, nil
}

// RenameCategory renames a custom category and repoints every transaction
// that references the old name, atomically.
func (u *LedgerUC) RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req *models.CategoryRequest) (*models.Category, error) {
	name, err := validateCategoryName(req.Name)
	if err != nil {
		return nil, err
	}

	category, err := u.ledgerRepo.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if isPredefinedCategory(name) {
		return nil, apperrors.ErrCategoryReserved
	}

	custom, err := u.ledgerRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range custom {
		if c.ID != categoryID && strings.EqualFold(c.Name, name) {
			return nil, apperrors.ErrCategoryExists
		}
	}

	oldName := category.Name
	category.Name = name
	if err := u.ledgerRepo.RenameCategory(ctx, category, oldName); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	u.invalidateDashboard(ctx, userID)
	u.publishCategoryEvent(ctx, userID, categoryID, constants.ActionRenamed)

	return category, nil
}

// DeleteCategory removes a custom category. Transactions that referenced it
// are reassigned to the fallback category in the same operation.
func (u *LedgerUC) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := u.ledgerRepo.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	if err := u.ledgerRepo.DeleteCategory(ctx, category, constants.FallbackCategory); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	u.invalidateDashboard(ctx, userID)
	u.publishCategoryEvent(ctx, userID, categoryID, constants.ActionReassigned)

	return nil
}

// resolveCategoryName maps a user-supplied category reference to the
// canonical stored name. Matching is case-insensitive over the predefined
// names and the user's custom categories; the canonical spelling wins over
// whatever case the caller sent.
func (u *LedgerUC) resolveCategoryName(ctx context.Context, userID uuid.UUID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}

	for _, predefined := range constants.PredefinedCategories {
		if strings.EqualFold(predefined, name) {
			return predefined, nil
		}
	}

	custom, err := u.ledgerRepo.ListCategories(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range custom {
		if strings.EqualFold(c.Name, name) {
			return c.Name, nil
		}
	}

	return "", apperrors.ErrUnknownCategory
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < minCategoryNameLength || len(name) > maxCategoryNameLength {
		return "", fmt.Errorf("%w: category name must be between %d and %d characters",
			apperrors.ErrValidation, minCategoryNameLength, maxCategoryNameLength)
	}
	return name, nil
}

func isPredefinedCategory(name string) bool {
	for _, predefined := range constants.PredefinedCategories {
		if strings.EqualFold(predefined, name) {
			return true
		}
	}
	return false
}

func (u *LedgerUC) publishCategoryEvent(ctx context.Context, userID, categoryID uuid.UUID, action string) {
	event := &models.LedgerEvent{
		UserID:     userID,
		Entity:     "category",
		Action:     action,
		EntityID:   categoryID,
		OccurredAt: time.Now().UTC(),
	}

	if err := u.ledgerGW.PublishCategoryEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish category event",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.String("action", action),
		)
	}
}
