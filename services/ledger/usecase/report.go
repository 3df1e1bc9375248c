package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// GetMonthlyReport computes the point-in-time report for one calendar month.
// An empty monthKey defaults to the month containing now. A month with no
// transactions yields zero totals and empty lists, not an error.
func (u *LedgerUC) GetMonthlyReport(ctx context.Context, userID uuid.UUID, monthKey string, now time.Time) (*models.MonthlyReport, error) {
	if monthKey == "" {
		monthKey = monthKeyOf(now)
	}

	year, month, err := parseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}

	start, end := monthBounds(year, month)

	transactions, err := u.ledgerRepo.ListTransactionsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list report transactions: %w", err)
	}

	totals, err := u.ledgerRepo.SumAmountsByTypeInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum report totals: %w", err)
	}

	expenseRows, err := u.ledgerRepo.SumExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum report expenses by category: %w", err)
	}

	totalIncome, totalExpense := splitByType(totals)

	expenseByCategory := make([]models.CategoryTotal, 0, len(expenseRows))
	for _, row := range expenseRows {
		expenseByCategory = append(expenseByCategory, models.CategoryTotal{
			Category: row.Category,
			Amount:   row.Total,
		})
	}

	return &models.MonthlyReport{
		Month:             monthKey,
		PeriodStart:       start,
		PeriodEnd:         end,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Net:               totalIncome.Sub(totalExpense),
		ExpenseByCategory: expenseByCategory,
		Transactions:      transactions,
	}, nil
}
