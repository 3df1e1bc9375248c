package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", clientIP),
				String("user_id", userIDStr),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				logger.Error("HTTP request", fields...)
			case statusCode >= 400:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
