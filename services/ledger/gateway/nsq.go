package gateway

import (
	"context"

	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// PublishTransactionEvent publishes a transaction change event
func (g *LedgerGW) PublishTransactionEvent(_ context.Context, event *models.LedgerEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicTransactionEvents, event)
}

// PublishCategoryEvent publishes a category change event
func (g *LedgerGW) PublishCategoryEvent(_ context.Context, event *models.LedgerEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicCategoryEvents, event)
}

// PublishGoalEvent publishes a savings goal change event
func (g *LedgerGW) PublishGoalEvent(_ context.Context, event *models.LedgerEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicGoalEvents, event)
}
