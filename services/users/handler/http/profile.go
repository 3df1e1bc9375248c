package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/internal/utils"
)

// GetProfile returns the authenticated user's account and preferences
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the authenticated user's display settings
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// ChangePassword verifies the current password and sets a new one
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PasswordChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), userID, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
