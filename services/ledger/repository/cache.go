package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// GetCachedDashboard returns the cached dashboard summary for a user, or
// (nil, nil) on a cache miss.
func (r *LedgerRepo) GetCachedDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	key := fmt.Sprintf(constants.KeyDashboardSummary, userID)

	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}

	var summary models.DashboardSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it
		return nil, nil
	}

	return &summary, nil
}

// SetCachedDashboard stores the dashboard summary with a short TTL
func (r *LedgerRepo) SetCachedDashboard(ctx context.Context, userID uuid.UUID, summary *models.DashboardSummary) error {
	key := fmt.Sprintf(constants.KeyDashboardSummary, userID)

	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard summary: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, raw, constants.DashboardCacheTTL); err != nil {
		return fmt.Errorf("failed to write dashboard cache: %w", err)
	}

	return nil
}

// InvalidateDashboard drops the cached dashboard after any ledger write
func (r *LedgerRepo) InvalidateDashboard(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyDashboardSummary, userID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}

	return nil
}
