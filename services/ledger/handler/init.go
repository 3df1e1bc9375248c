package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/middleware"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/ledger"
	httpHandler "github.com/spendwise/spendwise/services/ledger/handler/http"
)

// Handler combines all handlers for the ledger service
type Handler struct {
	ledgerHTTP *httpHandler.LedgerHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ledgerUC ledger.LedgerUC, cfg *models.Config) *Handler {
	return &Handler{
		ledgerHTTP: httpHandler.NewLedgerHandler(ledgerUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all ledger HTTP routes behind JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.GET("/dashboard", h.ledgerHTTP.GetDashboard)
	api.GET("/reports/monthly", h.ledgerHTTP.GetMonthlyReport)

	transactionGroup := api.Group("/transactions")
	transactionGroup.GET("", h.ledgerHTTP.ListTransactions)
	transactionGroup.POST("", h.ledgerHTTP.CreateTransaction)
	transactionGroup.GET("/:transactionID", h.ledgerHTTP.GetTransaction)
	transactionGroup.PUT("/:transactionID", h.ledgerHTTP.UpdateTransaction)
	transactionGroup.DELETE("/:transactionID", h.ledgerHTTP.DeleteTransaction)

	categoryGroup := api.Group("/categories")
	categoryGroup.GET("", h.ledgerHTTP.ListCategories)
	categoryGroup.POST("", h.ledgerHTTP.CreateCategory)
	categoryGroup.PUT("/:categoryID", h.ledgerHTTP.RenameCategory)
	categoryGroup.DELETE("/:categoryID", h.ledgerHTTP.DeleteCategory)

	goalGroup := api.Group("/goals")
	goalGroup.GET("", h.ledgerHTTP.ListGoals)
	goalGroup.POST("", h.ledgerHTTP.CreateGoal)
	goalGroup.PUT("/:goalID", h.ledgerHTTP.UpdateGoal)
	goalGroup.DELETE("/:goalID", h.ledgerHTTP.DeleteGoal)
}
