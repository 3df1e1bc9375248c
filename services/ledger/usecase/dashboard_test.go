package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/ledger/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedgerUC(t *testing.T) (*LedgerUC, *mocks.MockLedgerRepo, *mocks.MockLedgerGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(mockRepo, mockGW, &models.Config{})
	return uc, mockRepo, mockGW
}

func TestGetDashboard_Totals(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC)
	trendStart := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)

	recent := []models.Transaction{{ID: uuid.New(), Title: "Lunch"}}

	mockRepo.EXPECT().GetCachedDashboard(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().SumAmountsByType(gomock.Any(), userID).Return([]models.TypeTotal{
		{Type: models.TransactionTypeIncome, Total: decimal.NewFromInt(500)},
		{Type: models.TransactionTypeExpense, Total: decimal.NewFromInt(120)},
	}, nil)
	mockRepo.EXPECT().SumAmountsByTypeInRange(gomock.Any(), userID, monthStart, monthEnd).Return([]models.TypeTotal{
		{Type: models.TransactionTypeIncome, Total: decimal.NewFromInt(200)},
		{Type: models.TransactionTypeExpense, Total: decimal.NewFromInt(80)},
	}, nil)
	mockRepo.EXPECT().ListRecentTransactions(gomock.Any(), userID, 8).Return(recent, nil)
	mockRepo.EXPECT().SumExpensesByCategory(gomock.Any(), userID, monthStart, monthEnd).Return([]models.CategoryTotalRow{
		{Category: "Food", Total: decimal.NewFromInt(50)},
		{Category: "Transport", Total: decimal.NewFromInt(30)},
	}, nil)
	mockRepo.EXPECT().ListTrendEntries(gomock.Any(), userID, trendStart, monthEnd).Return(nil, nil)
	mockRepo.EXPECT().SetCachedDashboard(gomock.Any(), userID, gomock.Any()).Return(nil)

	summary, err := uc.GetDashboard(context.Background(), userID, now)

	require.NoError(t, err)
	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(380)))
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(120)))
	assert.True(t, summary.MonthlyIncome.Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.MonthlyExpense.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, recent, summary.RecentTransactions)

	require.Len(t, summary.ExpenseByCategory, 2)
	assert.Equal(t, "Food", summary.ExpenseByCategory[0].Category)
	assert.True(t, summary.ExpenseByCategory[0].Value.Equal(decimal.NewFromInt(50)))
}

func TestGetDashboard_TrendAcrossYearBoundary(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.TrendEntry{
		{Amount: decimal.NewFromInt(100), Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Type: models.TransactionTypeIncome},
		{Amount: decimal.NewFromInt(40), Date: time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC), Type: models.TransactionTypeExpense},
		// same month name, wrong year: must not land in the 2024-02 bucket
		{Amount: decimal.NewFromInt(999), Date: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), Type: models.TransactionTypeIncome},
	}

	mockRepo.EXPECT().GetCachedDashboard(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().SumAmountsByType(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().SumAmountsByTypeInRange(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ListRecentTransactions(gomock.Any(), userID, 8).Return(nil, nil)
	mockRepo.EXPECT().SumExpensesByCategory(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ListTrendEntries(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(entries, nil)
	mockRepo.EXPECT().SetCachedDashboard(gomock.Any(), userID, gomock.Any()).Return(nil)

	summary, err := uc.GetDashboard(context.Background(), userID, now)

	require.NoError(t, err)
	require.Len(t, summary.MonthlyTrend, 6)

	labels := make([]string, 0, 6)
	for _, point := range summary.MonthlyTrend {
		labels = append(labels, point.Month)
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, labels)

	dec := summary.MonthlyTrend[3]
	assert.True(t, dec.Expense.Equal(decimal.NewFromInt(40)))
	assert.True(t, dec.Income.IsZero())

	jan := summary.MonthlyTrend[4]
	assert.True(t, jan.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, jan.Expense.IsZero())

	feb := summary.MonthlyTrend[5]
	assert.True(t, feb.Income.IsZero())
	assert.True(t, feb.Expense.IsZero())
}

func TestGetDashboard_CacheHit(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	cached := &models.DashboardSummary{TotalBalance: decimal.NewFromInt(42)}

	mockRepo.EXPECT().GetCachedDashboard(gomock.Any(), userID).Return(cached, nil)

	summary, err := uc.GetDashboard(context.Background(), userID, time.Now())

	require.NoError(t, err)
	assert.Equal(t, cached, summary)
}

func TestGetDashboard_CacheReadFailureFallsThrough(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()

	mockRepo.EXPECT().GetCachedDashboard(gomock.Any(), userID).Return(nil, errors.New("redis down"))
	mockRepo.EXPECT().SumAmountsByType(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().SumAmountsByTypeInRange(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ListRecentTransactions(gomock.Any(), userID, 8).Return(nil, nil)
	mockRepo.EXPECT().SumExpensesByCategory(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ListTrendEntries(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().SetCachedDashboard(gomock.Any(), userID, gomock.Any()).Return(errors.New("redis down"))

	summary, err := uc.GetDashboard(context.Background(), userID, time.Now())

	require.NoError(t, err)
	assert.NotNil(t, summary)
}
