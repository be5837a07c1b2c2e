package controller

import (
	"context"
	"log/slog"
	"time"

	"skilltracker/repository"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	repo repository.HealthRepository
}

func NewHealthController(r repository.HealthRepository) *HealthController {
	return &HealthController{repo: r}
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := hc.repo.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
