package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/database"
	"github.com/spendwise/spendwise/internal/pkg/middleware"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/users"
	httpHandler "github.com/spendwise/spendwise/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	userHTTP *httpHandler.UserHandler
	cfg      *models.Config
	redis    *database.RedisClient
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config, redis *database.RedisClient) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
		cfg:      cfg,
		redis:    redis,
	}
}

// RegisterRoutes registers all user HTTP routes. Credential endpoints are
// rate limited per client IP; profile endpoints require a valid JWT.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/v1/auth")
	if h.redis != nil {
		auth.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redis.GetClient(),
			Key:         constants.KeyRateLimit,
			Limit:       constants.AuthRateLimit,
			Period:      constants.AuthRateLimitPeriod,
		}))
	}
	auth.POST("/register", h.userHTTP.Register)
	auth.POST("/login", h.userHTTP.Login)

	profile := e.Group("/api/v1/profile", middleware.JWTAuthMiddleware(h.cfg.JWT))
	profile.GET("", h.userHTTP.GetProfile)
	profile.PUT("", h.userHTTP.UpdateProfile)
	profile.PUT("/password", h.userHTTP.ChangePassword)
}
