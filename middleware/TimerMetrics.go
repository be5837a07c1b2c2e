package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TimerMetrics logs method, path, status, duration and, for authenticated
// requests, the user id.
func TimerMetrics(c *fiber.Ctx) error {
	startTime := time.Now()

	err := c.Next()

	duration := time.Since(startTime)
	status := c.Response().StatusCode()
	if err != nil {
		// The error handler has not run yet, so derive the status it will write.
		status = fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
	}

	attrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", duration.Milliseconds(),
	}
	if userID, ok := c.Locals(LocalUserID).(string); ok && userID != "" {
		attrs = append(attrs, "user_id", userID)
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		slog.Error("request", attrs...)
	case status >= fiber.StatusBadRequest:
		slog.Warn("request", attrs...)
	default:
		slog.Info("request", attrs...)
	}

	return err
}
