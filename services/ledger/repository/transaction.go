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

// CreateTransaction inserts a new transaction row
func (r *LedgerRepo) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	transaction.ID = uuid.New()
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, user_id, title, amount, category, type,
			date, notes, created_at, updated_at
		) VALUES (:id, :user_id, :title, :amount, :category, :type,
			:date, :notes, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, transaction)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID, scoped to its owner
func (r *LedgerRepo) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, type, date, notes, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`

	var transaction models.Transaction
	err := r.db.GetContext(ctx, &transaction, query, transactionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

// UpdateTransaction overwrites the mutable fields of a transaction row
func (r *LedgerRepo) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	transaction.UpdatedAt = time.Now()

	query := `
		UPDATE transactions
		SET title = :title, amount = :amount, category = :category, type = :type,
			date = :date, notes = :notes, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, transaction)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction owned by the given user
func (r *LedgerRepo) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// ListTransactions returns the user's transactions matching the filter,
// newest first. All provided filters combine with AND.
func (r *LedgerRepo) ListTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, type, date, notes, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if filter != nil {
		if filter.Category != "" {
			args = append(args, filter.Category)
			query += fmt.Sprintf(" AND category = $%d", len(args))
		}
		if filter.Type != "" {
			args = append(args, filter.Type)
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
		if filter.DateFrom != nil {
			args = append(args, *filter.DateFrom)
			query += fmt.Sprintf(" AND date >= $%d", len(args))
		}
		if filter.DateTo != nil {
			args = append(args, *filter.DateTo)
			query += fmt.Sprintf(" AND date <= $%d", len(args))
		}
		if filter.Search != "" {
			args = append(args, "%"+filter.Search+"%")
			query += fmt.Sprintf(" AND (title ILIKE $%d OR notes ILIKE $%d)", len(args), len(args))
		}
	}

	query += " ORDER BY date DESC, id DESC"

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// ListRecentTransactions returns the most recent transactions by date,
// ties broken by insertion order.
func (r *LedgerRepo) ListRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, type, date, notes, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return transactions, nil
}

// ListTransactionsInRange returns all transactions within the inclusive
// [from, to] date range, newest first.
func (r *LedgerRepo) ListTransactionsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, type, date, notes, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, id DESC
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list transactions in range: %w", err)
	}

	return transactions, nil
}

// SumAmountsByType sums amounts per transaction type across all time
func (r *LedgerRepo) SumAmountsByType(ctx context.Context, userID uuid.UUID) ([]models.TypeTotal, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY type
	`

	totals := []models.TypeTotal{}
	if err := r.db.SelectContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to sum amounts by type: %w", err)
	}

	return totals, nil
}

// SumAmountsByTypeInRange sums amounts per transaction type within the
// inclusive [from, to] date range
func (r *LedgerRepo) SumAmountsByTypeInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TypeTotal, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type
	`

	totals := []models.TypeTotal{}
	if err := r.db.SelectContext(ctx, &totals, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to sum amounts by type in range: %w", err)
	}

	return totals, nil
}

// SumExpensesByCategory sums EXPENSE amounts per category within the
// inclusive [from, to] date range. Categories without expenses are omitted.
func (r *LedgerRepo) SumExpensesByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryTotalRow, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND date >= $2 AND date <= $3
		GROUP BY category
	`

	totals := []models.CategoryTotalRow{}
	if err := r.db.SelectContext(ctx, &totals, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	return totals, nil
}

// ListTrendEntries returns the slim (amount, date, type) projection used to
// fold the monthly trend, oldest first.
func (r *LedgerRepo) ListTrendEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TrendEntry, error) {
	query := `
		SELECT amount, date, type
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	entries := []models.TrendEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list trend entries: %w", err)
	}

	return entries, nil
}
