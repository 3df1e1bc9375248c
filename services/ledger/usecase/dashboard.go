package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// trendMonths is the fixed length of the monthly trend window
const trendMonths = 6

// recentTransactionLimit bounds the dashboard's recent-transactions list
const recentTransactionLimit = 8

// GetDashboard computes the dashboard summary for a user: all-time totals,
// current-month totals, recent transactions, the current-month expense
// breakdown, and the 6-month trend. The current instant is injected so the
// month window is testable.
func (u *LedgerUC) GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.DashboardSummary, error) {
	if cached, err := u.ledgerRepo.GetCachedDashboard(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Warn("Failed to read dashboard cache",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}

	now = now.UTC()
	monthStart, monthEnd := monthBounds(now.Year(), now.Month())
	trendStart := time.Date(now.Year(), now.Month()-(trendMonths-1), 1, 0, 0, 0, 0, time.UTC)

	allTimeTotals, err := u.ledgerRepo.SumAmountsByType(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum all-time totals: %w", err)
	}

	monthTotals, err := u.ledgerRepo.SumAmountsByTypeInRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current-month totals: %w", err)
	}

	recent, err := u.ledgerRepo.ListRecentTransactions(ctx, userID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	expenseRows, err := u.ledgerRepo.SumExpensesByCategory(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	trendEntries, err := u.ledgerRepo.ListTrendEntries(ctx, userID, trendStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list trend entries: %w", err)
	}

	totalIncome, totalExpense := splitByType(allTimeTotals)
	monthlyIncome, monthlyExpense := splitByType(monthTotals)

	expenseByCategory := make([]models.CategoryExpense, 0, len(expenseRows))
	for _, row := range expenseRows {
		expenseByCategory = append(expenseByCategory, models.CategoryExpense{
			Category: row.Category,
			Value:    row.Total,
		})
	}

	summary := &models.DashboardSummary{
		TotalBalance:       totalIncome.Sub(totalExpense),
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		MonthlyIncome:      monthlyIncome,
		MonthlyExpense:     monthlyExpense,
		RecentTransactions: recent,
		ExpenseByCategory:  expenseByCategory,
		MonthlyTrend:       foldMonthlyTrend(now, trendEntries),
	}

	if err := u.ledgerRepo.SetCachedDashboard(ctx, userID, summary); err != nil {
		logger.Warn("Failed to write dashboard cache",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}

	return summary, nil
}

// splitByType picks the income and expense sums out of typed aggregation rows
func splitByType(totals []models.TypeTotal) (income, expense decimal.Decimal) {
	for _, row := range totals {
		switch row.Type {
		case models.TransactionTypeIncome:
			income = row.Total
		case models.TransactionTypeExpense:
			expense = row.Total
		}
	}
	return income, expense
}

// foldMonthlyTrend builds the fixed 6-month template covering now's month
// and the preceding 5, then folds transactions into it. Buckets are keyed
// by calendar (year, month); the short month name is only the label.
// Entries outside the template window are ignored.
func foldMonthlyTrend(now time.Time, entries []models.TrendEntry) []models.TrendPoint {
	keys := make([]string, 0, trendMonths)
	buckets := make(map[string]*models.TrendPoint, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		pointer := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		key := monthKeyOf(pointer)
		keys = append(keys, key)
		buckets[key] = &models.TrendPoint{
			Month:   pointer.Format("Jan"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, entry := range entries {
		bucket, ok := buckets[monthKeyOf(entry.Date)]
		if !ok {
			continue
		}

		if entry.Type == models.TransactionTypeIncome {
			bucket.Income = bucket.Income.Add(entry.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(entry.Amount)
		}
	}

	trend := make([]models.TrendPoint, 0, trendMonths)
	for _, key := range keys {
		trend = append(trend, *buckets[key])
	}
	return trend
}
