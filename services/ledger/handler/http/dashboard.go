package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/utils"
)

// GetDashboard returns the aggregated dashboard summary for the
// authenticated user
func (h *LedgerHandler) GetDashboard(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.ledgerUC.GetDashboard(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", summary)
}
