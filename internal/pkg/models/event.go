package models

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEvent is the message published after a ledger mutation. Consumers
// (analytics, audit) treat it as a change notification, not a data carrier.
type LedgerEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   uuid.UUID `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
