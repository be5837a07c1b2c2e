package controller

import (
	"skilltracker/dto"
	"skilltracker/service"
	"skilltracker/util"

	"github.com/gofiber/fiber/v2"
)

// AuthController provides handlers for authentication and the account
type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{svc: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with name, email and password. Returns a token valid for one hour.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.RegisterRequest true "Register payload"
// @Success      201  {object}  dto.TokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	res, err := ac.svc.Register(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.LoginRequest true "Login payload"
// @Success      200  {object}  dto.TokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	res, err := ac.svc.Login(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user without the password hash.
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	user, err := ac.svc.Me(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile godoc
// @Summary      Update name and/or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        payload body dto.UpdateProfileRequest true "Profile patch"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile [put]
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := ac.svc.UpdateProfile(c.UserContext(), userID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Requires the current password. A wrong current password is a 400.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        payload body dto.ChangePasswordRequest true "Password change payload"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/password [put]
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	if err := ac.svc.ChangePassword(c.UserContext(), userID, &req); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "password changed successfully"})
}

// UploadAvatar godoc
// @Summary      Replace avatar
// @Description  Multipart upload, field "avatar". JPEG, PNG, GIF or WEBP up to 2MB.
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/avatar [put]
func (ac *AuthController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	file, err := formFile(c, "avatar", util.AvatarUpload)
	if err != nil {
		return handleError(c, err)
	}

	user, err := ac.svc.UpdateAvatar(c.UserContext(), userID, file)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

// DeleteAvatar godoc
// @Summary      Remove avatar
// @Description  Deletes the hosted avatar and reverts to the default image.
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  map[string]string
// @Router       /auth/avatar [delete]
func (ac *AuthController) DeleteAvatar(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	user, err := ac.svc.DeleteAvatar(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}
