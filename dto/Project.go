package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"skilltracker/model"

	"github.com/google/uuid"
)

// StringList decodes either a JSON array of strings or a single string.
// Entries are split on commas and trimmed by the service.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("technologies must be a list or a comma-separated string")
	}
	*l = StringList{s}
	return nil
}

type CreateProjectRequest struct {
	Title            string     `json:"title" validate:"required,max=255"`
	Description      string     `json:"description" validate:"required,max=10000"`
	Technologies     StringList `json:"technologies"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	ProjectURL       string     `json:"projectUrl" validate:"max=2048"`
	GithubURL        string     `json:"githubUrl" validate:"max=2048"`
	AssociatedSkills []string   `json:"associatedSkills"`
	IsPublic         bool       `json:"isPublic"`
}

// UpdateProjectRequest is a partial patch. AssociatedSkills nil keeps the
// current links; a non-nil empty list clears them.
type UpdateProjectRequest struct {
	Title            *string     `json:"title" validate:"omitempty,max=255"`
	Description      *string     `json:"description" validate:"omitempty,max=10000"`
	Technologies     *StringList `json:"technologies"`
	StartDate        *string     `json:"startDate"`
	EndDate          *string     `json:"endDate"`
	ProjectURL       *string     `json:"projectUrl" validate:"omitempty,max=2048"`
	GithubURL        *string     `json:"githubUrl" validate:"omitempty,max=2048"`
	AssociatedSkills *[]string   `json:"associatedSkills"`
	IsPublic         *bool       `json:"isPublic"`
}

// SkillRef is how a project lists the skills it is linked to.
type SkillRef struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Category model.SkillCategory `json:"category"`
	Level    model.SkillLevel    `json:"level"`
}

type ProjectResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Technologies     []string   `json:"technologies"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	ProjectURL       string     `json:"projectUrl"`
	GithubURL        string     `json:"githubUrl"`
	AssociatedSkills []SkillRef `json:"associatedSkills"`
	IsPublic         bool       `json:"isPublic"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	skills := make([]SkillRef, 0, len(p.AssociatedSkills))
	for _, s := range p.AssociatedSkills {
		skills = append(skills, SkillRef{ID: s.ID, Name: s.Name, Category: s.Category, Level: s.Level})
	}
	tech := []string(p.Technologies)
	if tech == nil {
		tech = []string{}
	}
	return ProjectResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Title:            p.Title,
		Description:      p.Description,
		Technologies:     tech,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		ProjectURL:       p.ProjectURL,
		GithubURL:        p.GithubURL,
		AssociatedSkills: skills,
		IsPublic:         p.IsPublic,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
