package controller

import (
	"skilltracker/dto"
	"skilltracker/service"

	"github.com/gofiber/fiber/v2"
)

type PortfolioController struct {
	svc *service.PortfolioService
}

func NewPortfolioController(s *service.PortfolioService) *PortfolioController {
	return &PortfolioController{svc: s}
}

// GetSettings godoc
// @Summary      Current portfolio settings
// @Tags         portfolio
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  model.PortfolioConfig
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /public-portfolio/settings [get]
func (pc *PortfolioController) GetSettings(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	cfg, err := pc.svc.GetSettings(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cfg)
}

// UpdateSettings godoc
// @Summary      Update portfolio settings
// @Description  Partial update. Enabling the portfolio for the first time assigns a permanent publicId.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        payload body dto.UpdatePortfolioRequest true "Settings patch"
// @Success      200  {object}  model.PortfolioConfig
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /public-portfolio/settings [put]
func (pc *PortfolioController) UpdateSettings(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.UpdatePortfolioRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	cfg, err := pc.svc.UpdateSettings(c.UserContext(), userID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cfg)
}

// GetPublic godoc
// @Summary      Public portfolio
// @Description  Read-only view of a published portfolio. No authentication.
// @Tags         portfolio
// @Produce      json
// @Param        publicId path string true "Public portfolio id"
// @Success      200  {object}  dto.PublicPortfolio
// @Failure      404  {object}  map[string]string
// @Router       /public-portfolio/{publicId} [get]
func (pc *PortfolioController) GetPublic(c *fiber.Ctx) error {
	portfolio, err := pc.svc.GetPublic(c.UserContext(), c.Params("publicId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(portfolio)
}
