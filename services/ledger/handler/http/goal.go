package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/internal/utils"
)

// ListGoals returns the user's savings goals
func (h *LedgerHandler) ListGoals(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	goals, err := h.ledgerUC.ListGoals(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Goals retrieved successfully", goals)
}

// CreateGoal records a new savings goal
func (h *LedgerHandler) CreateGoal(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.GoalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	goal, err := h.ledgerUC.CreateGoal(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Goal created successfully", goal)
}

// UpdateGoal overwrites an existing savings goal
func (h *LedgerHandler) UpdateGoal(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	goalID, err := uuid.Parse(c.Param("goalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid goal ID")
	}

	var req models.GoalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	goal, err := h.ledgerUC.UpdateGoal(c.Request().Context(), userID, goalID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Goal updated successfully", goal)
}

// DeleteGoal removes a savings goal
func (h *LedgerHandler) DeleteGoal(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	goalID, err := uuid.Parse(c.Param("goalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid goal ID")
	}

	if err := h.ledgerUC.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Goal deleted successfully", nil)
}
