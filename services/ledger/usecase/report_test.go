package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMonthlyReport_Success(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC)

	transactions := []models.Transaction{{ID: uuid.New(), Title: "Groceries"}}

	mockRepo.EXPECT().ListTransactionsInRange(gomock.Any(), userID, start, end).Return(transactions, nil)
	mockRepo.EXPECT().SumAmountsByTypeInRange(gomock.Any(), userID, start, end).Return([]models.TypeTotal{
		{Type: models.TransactionTypeIncome, Total: decimal.NewFromInt(300)},
		{Type: models.TransactionTypeExpense, Total: decimal.NewFromInt(110)},
	}, nil)
	mockRepo.EXPECT().SumExpensesByCategory(gomock.Any(), userID, start, end).Return([]models.CategoryTotalRow{
		{Category: "Bills", Total: decimal.NewFromInt(110)},
	}, nil)

	report, err := uc.GetMonthlyReport(context.Background(), userID, "2024-02", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "2024-02", report.Month)
	assert.Equal(t, start, report.PeriodStart)
	assert.Equal(t, end, report.PeriodEnd)
	assert.True(t, report.TotalIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.TotalExpense.Equal(decimal.NewFromInt(110)))
	assert.True(t, report.Net.Equal(decimal.NewFromInt(190)))
	assert.Equal(t, transactions, report.Transactions)
	require.Len(t, report.ExpenseByCategory, 1)
	assert.Equal(t, "Bills", report.ExpenseByCategory[0].Category)
}

func TestGetMonthlyReport_EmptyKeyDefaultsToCurrentMonth(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	now := time.Date(2024, time.July, 20, 9, 30, 0, 0, time.UTC)
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 31, 23, 59, 59, 999000000, time.UTC)

	mockRepo.EXPECT().ListTransactionsInRange(gomock.Any(), userID, start, end).Return(nil, nil)
	mockRepo.EXPECT().SumAmountsByTypeInRange(gomock.Any(), userID, start, end).Return(nil, nil)
	mockRepo.EXPECT().SumExpensesByCategory(gomock.Any(), userID, start, end).Return(nil, nil)

	report, err := uc.GetMonthlyReport(context.Background(), userID, "", now)

	require.NoError(t, err)
	assert.Equal(t, "2024-07", report.Month)
	assert.True(t, report.TotalIncome.IsZero())
	assert.True(t, report.TotalExpense.IsZero())
	assert.True(t, report.Net.IsZero())
	assert.Empty(t, report.Transactions)
}

func TestGetMonthlyReport_InvalidMonth(t *testing.T) {
	uc, _, _ := newTestLedgerUC(t)

	_, err := uc.GetMonthlyReport(context.Background(), uuid.New(), "2024-13", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrInvalidMonthFormat)
}
