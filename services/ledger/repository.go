package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/spendwise/spendwise/services/ledger LedgerRepo

// LedgerRepo represents the ledger repository interface
type LedgerRepo interface {
	// transactions
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
	ListTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error)
	ListRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	ListTransactionsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Transaction, error)

	// typed aggregation
	SumAmountsByType(ctx context.Context, userID uuid.UUID) ([]models.TypeTotal, error)
	SumAmountsByTypeInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TypeTotal, error)
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategoryTotalRow, error)
	ListTrendEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TrendEntry, error)

	// categories
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	RenameCategory(ctx context.Context, category *models.Category, oldName string) error
	DeleteCategory(ctx context.Context, category *models.Category, fallback string) error

	// savings goals
	CreateGoal(ctx context.Context, goal *models.SavingsGoal) error
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.SavingsGoal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
	UpdateGoal(ctx context.Context, goal *models.SavingsGoal) error
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error

	// dashboard cache
	GetCachedDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error)
	SetCachedDashboard(ctx context.Context, userID uuid.UUID, summary *models.DashboardSummary) error
	InvalidateDashboard(ctx context.Context, userID uuid.UUID) error
}
