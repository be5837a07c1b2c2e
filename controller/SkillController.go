package controller

import (
	"skilltracker/dto"
	"skilltracker/service"

	"github.com/gofiber/fiber/v2"
)

type SkillController struct {
	svc *service.SkillService
}

func NewSkillController(s *service.SkillService) *SkillController {
	return &SkillController{svc: s}
}

// Create godoc
// @Summary      Add a skill
// @Description  Names are unique per user, compared case-insensitively.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        payload body dto.CreateSkillRequest true "Skill"
// @Success      201  {object}  model.Skill
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /skills [post]
func (sc *SkillController) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.CreateSkillRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	skill, err := sc.svc.Create(c.UserContext(), userID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// List godoc
// @Summary      List own skills
// @Tags         skills
// @Produce      json
// @Security     ApiKeyAuth
// @Param        public query bool false "Only public (true) or only private (false)"
// @Success      200  {array}   model.Skill
// @Failure      401  {object}  map[string]string
// @Router       /skills [get]
func (sc *SkillController) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	skills, err := sc.svc.List(c.UserContext(), userID, listFilter(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(skills)
}

// Get godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Skill id"
// @Success      200  {object}  model.Skill
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /skills/{id} [get]
func (sc *SkillController) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	skill, err := sc.svc.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      path string true "Skill id"
// @Param        payload body dto.UpdateSkillRequest true "Skill patch"
// @Success      200  {object}  model.Skill
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /skills/{id} [put]
func (sc *SkillController) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.UpdateSkillRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	skill, err := sc.svc.Update(c.UserContext(), userID, c.Params("id"), &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Description  Projects linked to the skill are kept; only the link is removed.
// @Tags         skills
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Skill id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /skills/{id} [delete]
func (sc *SkillController) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := sc.svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "skill removed"})
}
