package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill names are stored case-folded; (UserID, Name) is unique.
type Skill struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill_name" json:"user"`
	Name        string        `gorm:"size:100;not null;uniqueIndex:idx_user_skill_name" json:"name"`
	Category    SkillCategory `gorm:"size:50;not null" json:"category"`
	Level       SkillLevel    `gorm:"size:20;not null" json:"level"`
	Description string        `gorm:"type:text" json:"description"`
	IsPublic    bool          `gorm:"not null" json:"isPublic"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Skill) BeforeCreate(_ *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
