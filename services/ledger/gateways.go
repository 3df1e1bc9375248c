package ledger

import (
	"context"

	"github.com/spendwise/spendwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/spendwise/spendwise/services/ledger LedgerGW

// LedgerGW defines the ledger gateway interface for publishing change events
type LedgerGW interface {
	PublishTransactionEvent(ctx context.Context, event *models.LedgerEvent) error
	PublishCategoryEvent(ctx context.Context, event *models.LedgerEvent) error
	PublishGoalEvent(ctx context.Context, event *models.LedgerEvent) error
}
