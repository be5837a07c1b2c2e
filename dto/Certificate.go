package dto

import "skilltracker/model"

// CreateCertificateRequest is read from multipart form fields; the file
// itself travels as "certificateFile".
type CreateCertificateRequest struct {
	Title         string                    `json:"title" form:"title" validate:"required,max=255"`
	Issuer        string                    `json:"issuer" form:"issuer" validate:"max=255"`
	IssueDate     string                    `json:"issueDate" form:"issueDate"`
	CredentialID  string                    `json:"credentialId" form:"credentialId" validate:"max=255"`
	CredentialURL string                    `json:"credentialUrl" form:"credentialUrl" validate:"max=2048"`
	Description   string                    `json:"description" form:"description" validate:"max=5000"`
	Category      model.CertificateCategory `json:"category" form:"category" validate:"omitempty,cert_category"`
	IsPublic      bool                      `json:"isPublic" form:"isPublic"`
}

// UpdateCertificateRequest is a partial patch: nil fields are left alone.
type UpdateCertificateRequest struct {
	Title         *string                    `json:"title" validate:"omitempty,max=255"`
	Issuer        *string                    `json:"issuer" validate:"omitempty,max=255"`
	IssueDate     *string                    `json:"issueDate"`
	CredentialID  *string                    `json:"credentialId" validate:"omitempty,max=255"`
	CredentialURL *string                    `json:"credentialUrl" validate:"omitempty,max=2048"`
	Description   *string                    `json:"description" validate:"omitempty,max=5000"`
	Category      *model.CertificateCategory `json:"category" validate:"omitempty,cert_category"`
	IsPublic      *bool                      `json:"isPublic"`
}

// Normalize drops a blank category so it is treated as "not supplied".
func (r *UpdateCertificateRequest) Normalize() {
	if r.Category != nil && *r.Category == "" {
		r.Category = nil
	}
}
