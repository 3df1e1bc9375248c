package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyReport is the point-in-time report for one calendar month
type MonthlyReport struct {
	Month             string          `json:"month"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Net               decimal.Decimal `json:"net"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category"`
	Transactions      []Transaction   `json:"transactions"`
}

// CategoryTotal is one category's expense sum within the report period
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
