package dto

import (
	"time"

	"skilltracker/model"

	"github.com/google/uuid"
)

type PortfolioSettingsPatch struct {
	ShowCertificates *bool           `json:"showCertificates"`
	ShowSkills       *bool           `json:"showSkills"`
	ShowProjects     *bool           `json:"showProjects"`
	AboutMe          *string         `json:"aboutMe" validate:"omitempty,max=5000"`
	SectionOrder     []model.Section `json:"sectionOrder" validate:"omitempty,max=3,unique,dive,section"`
}

// UpdatePortfolioRequest carries only the fields the caller wants changed.
type UpdatePortfolioRequest struct {
	Enabled  *bool                   `json:"enabled"`
	Theme    *model.Theme            `json:"theme" validate:"omitempty,theme"`
	Settings *PortfolioSettingsPatch `json:"settings"`
}

type PublicOwner struct {
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	AvatarURL   string                  `json:"avatarUrl"`
	Theme       model.Theme             `json:"theme"`
	Settings    model.PortfolioSettings `json:"settings"`
	AboutMeHTML string                  `json:"aboutMeHtml"`
}

// PublicPortfolio is the read-only view served to anonymous visitors.
// Sections lists, in display order, the sections that are switched on and non-empty.
type PublicPortfolio struct {
	User         PublicOwner         `json:"user"`
	Sections     []model.Section     `json:"sections"`
	Certificates []PublicCertificate `json:"certificates"`
	Skills       []model.Skill       `json:"skills"`
	Projects     []ProjectResponse   `json:"projects"`
}

// PublicCertificate is a certificate as shown to visitors, without the owner
// id or the media host object id.
type PublicCertificate struct {
	ID            uuid.UUID                 `json:"id"`
	Title         string                    `json:"title"`
	Issuer        string                    `json:"issuer"`
	IssueDate     *time.Time                `json:"issueDate"`
	CredentialID  string                    `json:"credentialId"`
	CredentialURL string                    `json:"credentialUrl"`
	Description   string                    `json:"description"`
	FileURL       string                    `json:"fileUrl"`
	Category      model.CertificateCategory `json:"category"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

func NewPublicCertificates(certs []model.Certificate) []PublicCertificate {
	out := make([]PublicCertificate, 0, len(certs))
	for _, c := range certs {
		out = append(out, PublicCertificate{
			ID:            c.ID,
			Title:         c.Title,
			Issuer:        c.Issuer,
			IssueDate:     c.IssueDate,
			CredentialID:  c.CredentialID,
			CredentialURL: c.CredentialURL,
			Description:   c.Description,
			FileURL:       c.FileURL,
			Category:      c.Category,
			UpdatedAt:     c.UpdatedAt,
		})
	}
	return out
}
