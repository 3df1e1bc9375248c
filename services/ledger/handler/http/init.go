package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger HTTP handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// userIDFromContext extracts the authenticated user ID set by the JWT
// middleware
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
