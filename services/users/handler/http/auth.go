package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/internal/utils"
)

// Register creates a new account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", user)
}

// Login verifies credentials and returns a JWT
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}
