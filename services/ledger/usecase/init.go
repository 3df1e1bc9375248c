package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/ledger"
)

// LedgerUC implements the ledger usecase
type LedgerUC struct {
	ledgerRepo ledger.LedgerRepo
	ledgerGW   ledger.LedgerGW
	cfg        *models.Config
}

// NewLedgerUC creates a new ledger usecase instance
func NewLedgerUC(
	ledgerRepo ledger.LedgerRepo,
	ledgerGW ledger.LedgerGW,
	cfg *models.Config,
) *LedgerUC {
	return &LedgerUC{
		ledgerRepo: ledgerRepo,
		ledgerGW:   ledgerGW,
		cfg:        cfg,
	}
}

// invalidateDashboard drops the cached dashboard after a write. Cache upkeep
// never fails the request.
func (u *LedgerUC) invalidateDashboard(ctx context.Context, userID uuid.UUID) {
	if err := u.ledgerRepo.InvalidateDashboard(ctx, userID); err != nil {
		logger.Warn("Failed to invalidate dashboard cache",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}
}
