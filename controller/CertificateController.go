package controller

import (
	"skilltracker/dto"
	"skilltracker/service"
	"skilltracker/util"

	"github.com/gofiber/fiber/v2"
)

type CertificateController struct {
	svc *service.CertificateService
}

func NewCertificateController(s *service.CertificateService) *CertificateController {
	return &CertificateController{svc: s}
}

// Create godoc
// @Summary      Add a certificate
// @Description  Multipart form. The document goes in "certificateFile" (JPEG, PNG or PDF, up to 5MB).
// @Tags         certificates
// @Accept       mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        title            formData string true  "Title"
// @Param        issuer           formData string false "Issuer"
// @Param        issueDate        formData string false "Issue date (YYYY-MM-DD)"
// @Param        credentialId     formData string false "Credential id"
// @Param        credentialUrl    formData string false "Credential URL"
// @Param        description      formData string false "Description"
// @Param        category         formData string false "Category"
// @Param        isPublic         formData bool   false "Visible on the public portfolio"
// @Param        certificateFile  formData file   true  "Certificate document"
// @Success      201  {object}  model.Certificate
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /certificates [post]
func (cc *CertificateController) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.CreateCertificateRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	file, err := formFile(c, "certificateFile", util.CertificateUpload)
	if err != nil {
		return handleError(c, err)
	}

	cert, err := cc.svc.Create(c.UserContext(), userID, &req, file)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

// List godoc
// @Summary      List own certificates
// @Tags         certificates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        public query bool false "Only public (true) or only private (false)"
// @Success      200  {array}   model.Certificate
// @Failure      401  {object}  map[string]string
// @Router       /certificates [get]
func (cc *CertificateController) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	certs, err := cc.svc.List(c.UserContext(), userID, listFilter(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(certs)
}

// Get godoc
// @Summary      Get a certificate
// @Tags         certificates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Certificate id"
// @Success      200  {object}  model.Certificate
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /certificates/{id} [get]
func (cc *CertificateController) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	cert, err := cc.svc.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cert)
}

// Update godoc
// @Summary      Update a certificate
// @Description  Partial update; omitted fields keep their value. The document itself cannot be replaced.
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      path string true "Certificate id"
// @Param        payload body dto.UpdateCertificateRequest true "Certificate patch"
// @Success      200  {object}  model.Certificate
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /certificates/{id} [put]
func (cc *CertificateController) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	var req dto.UpdateCertificateRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	cert, err := cc.svc.Update(c.UserContext(), userID, c.Params("id"), &req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cert)
}

// Delete godoc
// @Summary      Delete a certificate
// @Tags         certificates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Certificate id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /certificates/{id} [delete]
func (cc *CertificateController) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := cc.svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "certificate removed"})
}
