package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:50;not null" json:"name"`
	Email         string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash  string    `gorm:"type:text;not null" json:"-"`
	AvatarURL     string    `gorm:"type:text" json:"avatarUrl"`
	AvatarMediaID string    `gorm:"size:255" json:"avatarMediaId,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Portfolio PortfolioConfig `gorm:"embedded;embeddedPrefix:portfolio_" json:"portfolio"`
}

// PortfolioConfig controls whether and how a user's content is published.
// PublicID stays set once generated, even after the portfolio is disabled.
type PortfolioConfig struct {
	Enabled  bool              `json:"enabled"`
	PublicID *string           `gorm:"size:64;uniqueIndex" json:"publicId"`
	Theme    Theme             `gorm:"size:20" json:"theme"`
	Settings PortfolioSettings `gorm:"embedded" json:"settings"`
}

type PortfolioSettings struct {
	ShowCertificates bool                         `json:"showCertificates"`
	ShowSkills       bool                         `json:"showSkills"`
	ShowProjects     bool                         `json:"showProjects"`
	AboutMe          string                       `gorm:"type:text" json:"aboutMe"`
	SectionOrder     datatypes.JSONSlice[Section] `json:"sectionOrder"`
}

// DefaultPortfolioConfig is what every new account starts with.
func DefaultPortfolioConfig() PortfolioConfig {
	return PortfolioConfig{
		Theme: ThemeDefault,
		Settings: PortfolioSettings{
			ShowCertificates: true,
			ShowSkills:       true,
			ShowProjects:     true,
			SectionOrder:     Sections(),
		},
	}
}

// Shows reports whether the given section is switched on.
func (s PortfolioSettings) Shows(section Section) bool {
	switch section {
	case SectionCertificates:
		return s.ShowCertificates
	case SectionSkills:
		return s.ShowSkills
	case SectionProjects:
		return s.ShowProjects
	}
	return false
}

func (u *User) BeforeCreate(_ *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
