package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/internal/utils"
)

// ListCategories returns the predefined names and the user's custom categories
func (h *LedgerHandler) ListCategories(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	categories, err := h.ledgerUC.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory adds a custom category
func (h *LedgerHandler) CreateCategory(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	category, err := h.ledgerUC.CreateCategory(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", category)
}

// RenameCategory renames a custom category and repoints its transactions
func (h *LedgerHandler) RenameCategory(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	categoryID, err := uuid.Parse(c.Param("categoryID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	category, err := h.ledgerUC.RenameCategory(c.Request().Context(), userID, categoryID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Category renamed successfully", category)
}

// DeleteCategory removes a custom category, reassigning its transactions to
// the fallback category
func (h *LedgerHandler) DeleteCategory(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	categoryID, err := uuid.Parse(c.Param("categoryID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.ledgerUC.DeleteCategory(c.Request().Context(), userID, categoryID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}
