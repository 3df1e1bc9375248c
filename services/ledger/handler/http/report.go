package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/utils"
)

// GetMonthlyReport returns the report for the month given by the "month"
// query parameter (YYYY-MM). Without the parameter the current month is used.
func (h *LedgerHandler) GetMonthlyReport(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	monthKey := c.QueryParam("month")

	report, err := h.ledgerUC.GetMonthlyReport(c.Request().Context(), userID, monthKey, time.Now().UTC())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly report retrieved successfully", report)
}
