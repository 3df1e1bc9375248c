package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/spendwise/spendwise/services/ledger LedgerUC

// LedgerUC represents the ledger usecase interface
type LedgerUC interface {
	// aggregation
	GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.DashboardSummary, error)
	GetMonthlyReport(ctx context.Context, userID uuid.UUID, monthKey string, now time.Time) (*models.MonthlyReport, error)

	// transactions
	ListTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *models.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error

	// categories
	ListCategories(ctx context.Context, userID uuid.UUID) (*models.CategoryList, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, req *models.CategoryRequest) (*models.Category, error)
	RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error

	// savings goals
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
	CreateGoal(ctx context.Context, userID uuid.UUID, req *models.GoalRequest) (*models.SavingsGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *models.GoalRequest) (*models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}
