package controller

import (
	"skilltracker/dto"
	"skilltracker/service"

	"github.com/gofiber/fiber/v2"
)

type ProjectController struct {
	svc *service.ProjectService
}

func NewProjectController(s *service.ProjectService) *ProjectController {
	return &ProjectController{svc: s}
}

// Create godoc
// @Summary      Add a project
// @Description  technologies may be a list or a comma-separated string. associatedSkills must be ids of the caller's skills.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        payload body dto.CreateProjectRequest true "Project"
// @Success      201  {object}  dto.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /projects [post]
func (pc *ProjectController) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.CreateProjectRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	project, err := pc.svc.Create(c.UserContext(), userID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProjectResponse(*project))
}

// List godoc
// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Security     ApiKeyAuth
// @Param        public query bool false "Only public (true) or only private (false)"
// @Success      200  {array}   dto.ProjectResponse
// @Failure      401  {object}  map[string]string
// @Router       /projects [get]
func (pc *ProjectController) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	projects, err := pc.svc.List(c.UserContext(), userID, listFilter(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewProjectResponses(projects))
}

// Get godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (pc *ProjectController) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	project, err := pc.svc.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewProjectResponse(*project))
}

// Update godoc
// @Summary      Update a project
// @Description  Omitting associatedSkills keeps the current links; an empty list clears them.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      path string true "Project id"
// @Param        payload body dto.UpdateProjectRequest true "Project patch"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [put]
func (pc *ProjectController) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.UpdateProjectRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	project, err := pc.svc.Update(c.UserContext(), userID, c.Params("id"), &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewProjectResponse(*project))
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (pc *ProjectController) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := pc.svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "project removed"})
}
