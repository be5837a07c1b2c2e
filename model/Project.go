package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user"`
	Title        string                      `gorm:"size:255;not null" json:"title"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	StartDate    *time.Time                  `json:"startDate"`
	EndDate      *time.Time                  `json:"endDate"`
	ProjectURL   string                      `gorm:"type:text" json:"projectUrl"`
	GithubURL    string                      `gorm:"type:text" json:"githubUrl"`
	IsPublic     bool                        `gorm:"not null" json:"isPublic"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Join rows are removed with either side; the skills themselves are not.
	AssociatedSkills []Skill `gorm:"many2many:project_skills;constraint:OnDelete:CASCADE;" json:"associatedSkills"`
}

func (p *Project) BeforeCreate(_ *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
