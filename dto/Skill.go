package dto

import "skilltracker/model"

type CreateSkillRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Category    model.SkillCategory `json:"category" validate:"omitempty,skill_category"`
	Level       model.SkillLevel    `json:"level" validate:"omitempty,skill_level"`
	Description string              `json:"description" validate:"max=2000"`
	IsPublic    bool                `json:"isPublic"`
}

type UpdateSkillRequest struct {
	Name        *string              `json:"name" validate:"omitempty,max=100"`
	Category    *model.SkillCategory `json:"category" validate:"omitempty,skill_category"`
	Level       *model.SkillLevel    `json:"level" validate:"omitempty,skill_level"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	IsPublic    *bool                `json:"isPublic"`
}

func (r *UpdateSkillRequest) Normalize() {
	if r.Category != nil && *r.Category == "" {
		r.Category = nil
	}
	if r.Level != nil && *r.Level == "" {
		r.Level = nil
	}
}
