package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/services/users"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// userIDFromContext extracts the authenticated user ID set by the JWT
// middleware
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
