package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

var transactionColumns = []string{
	"id", "user_id", "title", "amount", "category", "type", "date", "notes", "created_at", "updated_at",
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	txID := uuid.New()

	mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions").
		WithArgs(txID, userID).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.GetTransaction(context.Background(), userID, txID)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	txID := uuid.New()

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(txID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(context.Background(), userID, txID)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_AllFiltersCombined(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 23, 59, 59, 999000000, time.UTC)
	filter := &models.TransactionFilter{
		Search:   "coffee",
		Category: "Food",
		Type:     models.TransactionTypeExpense,
		DateFrom: &from,
		DateTo:   &to,
	}

	mock.ExpectQuery(`AND category = \$2 AND type = \$3 AND date >= \$4 AND date <= \$5 AND \(title ILIKE \$6 OR notes ILIKE \$6\) ORDER BY date DESC, id DESC`).
		WithArgs(userID, "Food", models.TransactionTypeExpense, from, to, "%coffee%").
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	transactions, err := repo.ListTransactions(context.Background(), userID, filter)

	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_NoFilters(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(transactionColumns).
		AddRow(uuid.New(), userID, "Lunch", "12.50", "Food", "EXPENSE", now, nil, now, now)
	mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY date DESC, id DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	transactions, err := repo.ListTransactions(context.Background(), userID, &models.TransactionFilter{})

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Lunch", transactions[0].Title)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("12.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumAmountsByType(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"type", "total"}).
		AddRow("INCOME", "500.00").
		AddRow("EXPENSE", "120.25")
	mock.ExpectQuery(`SELECT type, COALESCE\(SUM\(amount\), 0\) AS total`).
		WithArgs(userID).
		WillReturnRows(rows)

	totals, err := repo.SumAmountsByType(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, models.TransactionTypeIncome, totals[0].Type)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, totals[1].Total.Equal(decimal.RequireFromString("120.25")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumExpensesByCategory(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC)

	rows := sqlmock.NewRows([]string{"category", "total"}).
		AddRow("Food", "80.00").
		AddRow("Transport", "25.50")
	mock.ExpectQuery(`AND type = 'EXPENSE' AND date >= \$2 AND date <= \$3`).
		WithArgs(userID, from, to).
		WillReturnRows(rows)

	totals, err := repo.SumExpensesByCategory(context.Background(), userID, from, to)

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Food", totals[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
