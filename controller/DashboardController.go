package controller

import (
	"skilltracker/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	svc *service.DashboardService
}

func NewDashboardController(s *service.DashboardService) *DashboardController {
	return &DashboardController{svc: s}
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Totals and public counts per kind, plus the most used certificate and skill categories ("N/A" when empty).
// @Tags         dashboard
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  dto.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	stats, err := dc.svc.Stats(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}
