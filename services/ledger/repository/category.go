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

// CreateCategory inserts a new custom category
func (r *LedgerRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	category.ID = uuid.New()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
		INSERT INTO categories (id, user_id, name, created_at, updated_at)
		VALUES (:id, :user_id, :name, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// GetCategory retrieves a custom category by ID, scoped to its owner
func (r *LedgerRepo) GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, categoryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// ListCategories returns the user's custom categories ordered by name
func (r *LedgerRepo) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC
	`

	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// RenameCategory updates the category record and re-points every transaction
// still referencing the old stored name. Both writes happen in a single
// transaction so a partial rename is never visible.
func (r *LedgerRepo) RenameCategory(ctx context.Context, category *models.Category, oldName string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	category.UpdatedAt = time.Now()

	query := `
		UPDATE categories
		SET name = :name, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := tx.NamedExecContext(ctx, query, category)
	if err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check renamed rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrCategoryNotFound
	}

	query = `
		UPDATE transactions
		SET category = $1
		WHERE user_id = $2 AND category = $3
	`
	_, err = tx.ExecContext(ctx, query, category.Name, category.UserID, oldName)
	if err != nil {
		return fmt.Errorf("failed to repoint transactions: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteCategory reassigns the category's transactions to the fallback and
// then deletes the category record, in that order, in a single transaction.
// Reassign-then-delete keeps every transaction on a valid category even if
// the second step fails.
func (r *LedgerRepo) DeleteCategory(ctx context.Context, category *models.Category, fallback string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE transactions
		SET category = $1
		WHERE user_id = $2 AND category = $3
	`
	_, err = tx.ExecContext(ctx, query, fallback, category.UserID, category.Name)
	if err != nil {
		return fmt.Errorf("failed to reassign transactions: %w", err)
	}

	query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	result, err := tx.ExecContext(ctx, query, category.ID, category.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrCategoryNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
