package models

import "github.com/shopspring/decimal"

// DashboardSummary is the aggregated view backing the dashboard screen
type DashboardSummary struct {
	TotalBalance       decimal.Decimal   `json:"total_balance"`
	TotalIncome        decimal.Decimal   `json:"total_income"`
	TotalExpense       decimal.Decimal   `json:"total_expense"`
	MonthlyIncome      decimal.Decimal   `json:"monthly_income"`
	MonthlyExpense     decimal.Decimal   `json:"monthly_expense"`
	RecentTransactions []Transaction     `json:"recent_transactions"`
	ExpenseByCategory  []CategoryExpense `json:"expense_by_category"`
	MonthlyTrend       []TrendPoint      `json:"monthly_trend"`
}

// CategoryExpense is one slice of the current-month expense breakdown
type CategoryExpense struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// TrendPoint is one month of the 6-month income/expense trend. Month is the
// short display label; the bucket itself is keyed by calendar year+month.
type TrendPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
