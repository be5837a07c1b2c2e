package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"user"`
	Title         string              `gorm:"size:255;not null" json:"title"`
	Issuer        string              `gorm:"size:255" json:"issuer"`
	IssueDate     *time.Time          `json:"issueDate"`
	CredentialID  string              `gorm:"size:255" json:"credentialId"`
	CredentialURL string              `gorm:"type:text" json:"credentialUrl"`
	Description   string              `gorm:"type:text" json:"description"`
	FileURL       string              `gorm:"type:text;not null" json:"fileUrl"`
	FileMediaID   string              `gorm:"size:255;not null" json:"fileMediaId"`
	Category      CertificateCategory `gorm:"size:50;not null" json:"category"`
	IsPublic      bool                `gorm:"not null" json:"isPublic"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Certificate) BeforeCreate(_ *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
