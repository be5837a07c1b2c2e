package controller

import (
	"errors"
	"log/slog"

	"skilltracker/middleware"
	"skilltracker/repository"
	"skilltracker/service"
	"skilltracker/storage"
	"skilltracker/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// handleError maps service errors to HTTP responses. Anything unexpected is
// logged and reported as a generic 500.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case service.IsValidation(err), util.IsUploadError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotAuthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "user not authorized"})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
}

// parseBody decodes and validates a request payload. Failures come back as
// a *service.ValidationError for handleError.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &service.ValidationError{Msg: "invalid request payload"}
	}
	if n, ok := out.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := util.ValidateStruct(out); err != nil {
		return &service.ValidationError{Msg: util.ValidationMessage(err)}
	}
	return nil
}

// currentUser returns the id RequireAuth stored for this request.
func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, service.ErrNotAuthorized
	}
	return id, nil
}

// listFilter reads the optional ?public=true|false query parameter.
func listFilter(c *fiber.Ctx) repository.ListFilter {
	var f repository.ListFilter
	switch c.Query("public") {
	case "true":
		v := true
		f.IsPublic = &v
	case "false":
		v := false
		f.IsPublic = &v
	}
	return f
}

// formFile reads and validates an uploaded file field.
func formFile(c *fiber.Ctx, field string, rule util.UploadRule) (storage.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return storage.File{}, util.ErrFileMissing
	}
	data, contentType, err := util.ReadUpload(fh, rule)
	if err != nil {
		return storage.File{}, err
	}
	return storage.File{Data: data, ContentType: contentType}, nil
}
