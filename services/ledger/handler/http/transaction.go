package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/internal/utils"
)

// query date parameters accept either a bare date or a full timestamp
var queryDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
}

// ListTransactions returns the user's transactions, optionally filtered by
// search, category, type and date range query parameters.
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.TransactionFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Type:     models.TransactionType(c.QueryParam("type")),
	}

	dateFrom, err := parseQueryDate(c.QueryParam("dateFrom"), false)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dateFrom parameter")
	}
	filter.DateFrom = dateFrom

	dateTo, err := parseQueryDate(c.QueryParam("dateTo"), true)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dateTo parameter")
	}
	filter.DateTo = dateTo

	transactions, err := h.ledgerUC.ListTransactions(c.Request().Context(), userID, filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// GetTransaction returns a single transaction by ID
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	transaction, err := h.ledgerUC.GetTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}

// CreateTransaction records a new transaction
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	transaction, err := h.ledgerUC.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", transaction)
}

// UpdateTransaction overwrites an existing transaction
func (h *LedgerHandler) UpdateTransaction(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	transaction, err := h.ledgerUC.UpdateTransaction(c.Request().Context(), userID, transactionID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", transaction)
}

// DeleteTransaction removes a transaction
func (h *LedgerHandler) DeleteTransaction(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.ledgerUC.DeleteTransaction(c.Request().Context(), userID, transactionID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}

// parseQueryDate parses an optional date query parameter. A bare date used
// as an upper bound is widened to the end of that day so the bound stays
// inclusive.
func parseQueryDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for i, format := range queryDateFormats {
		parsed, err := time.Parse(format, value)
		if err != nil {
			continue
		}
		parsed = parsed.UTC()
		if endOfDay && i == 0 {
			parsed = parsed.Add(24*time.Hour - time.Millisecond)
		}
		return &parsed, nil
	}

	return nil, echo.ErrBadRequest
}
