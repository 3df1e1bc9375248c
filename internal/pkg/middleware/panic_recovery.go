package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/utils"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig(zapLogger *logger.ZapLogger) PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
		Logger:    zapLogger,
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					stack := debug.Stack()
					if len(stack) > config.StackSize {
						stack = stack[:config.StackSize]
					}

					config.Logger.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stacktrace", string(stack)),
					)

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
