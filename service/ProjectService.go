package service

import (
	"context"
	"fmt"
	"strings"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
	"skilltracker/util"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectService struct {
	repo   repository.ProjectRepository
	skills repository.SkillRepository
}

func NewProjectService(repo repository.ProjectRepository, skills repository.SkillRepository) *ProjectService {
	return &ProjectService{repo: repo, skills: skills}
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*model.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, invalid("description is required")
	}

	start, err := util.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalid("startDate: %v", err)
	}
	end, err := util.ParseDate(req.EndDate)
	if err != nil {
		return nil, invalid("endDate: %v", err)
	}

	skills, err := s.ownedSkills(ctx, userID, req.AssociatedSkills)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		UserID:           userID,
		Title:            title,
		Description:      req.Description,
		Technologies:     datatypes.JSONSlice[string](util.SplitList(req.Technologies)),
		StartDate:        start,
		EndDate:          end,
		ProjectURL:       strings.TrimSpace(req.ProjectURL),
		GithubURL:        strings.TrimSpace(req.GithubURL),
		IsPublic:         req.IsPublic,
		AssociatedSkills: skills,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return s.reload(ctx, project.ID)
}

func (s *ProjectService) List(ctx context.Context, userID uuid.UUID, filter repository.ListFilter) ([]model.Project, error) {
	projects, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, userID uuid.UUID, id string) (*model.Project, error) {
	projectID, err := parseID(id)
	if err != nil {
		return nil, lookupErr("project", err)
	}
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, lookupErr("project", err)
	}
	if project.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, userID uuid.UUID, id string, req *dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		project.Title = title
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, invalid("description cannot be empty")
		}
		project.Description = *req.Description
	}
	if req.Technologies != nil {
		project.Technologies = datatypes.JSONSlice[string](util.SplitList(*req.Technologies))
	}
	if req.StartDate != nil {
		d, err := util.ParseDate(*req.StartDate)
		if err != nil {
			return nil, invalid("startDate: %v", err)
		}
		project.StartDate = d
	}
	if req.EndDate != nil {
		d, err := util.ParseDate(*req.EndDate)
		if err != nil {
			return nil, invalid("endDate: %v", err)
		}
		project.EndDate = d
	}
	if req.ProjectURL != nil {
		project.ProjectURL = strings.TrimSpace(*req.ProjectURL)
	}
	if req.GithubURL != nil {
		project.GithubURL = strings.TrimSpace(*req.GithubURL)
	}
	if req.IsPublic != nil {
		project.IsPublic = *req.IsPublic
	}

	replaceSkills := req.AssociatedSkills != nil
	if replaceSkills {
		skills, err := s.ownedSkills(ctx, userID, *req.AssociatedSkills)
		if err != nil {
			return nil, err
		}
		project.AssociatedSkills = skills
	}

	if err := s.repo.Update(ctx, project, replaceSkills); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return s.reload(ctx, project.ID)
}

func (s *ProjectService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	project, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ownedSkills resolves skill ids, failing unless every id is well formed
// and belongs to userID.
func (s *ProjectService) ownedSkills(ctx context.Context, userID uuid.UUID, ids []string) ([]model.Skill, error) {
	if len(ids) == 0 {
		return []model.Skill{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, invalidSkills()
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		parsed = append(parsed, id)
	}

	skills, err := s.skills.ListOwned(ctx, userID, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve skills: %w", err)
	}
	if len(skills) != len(parsed) {
		return nil, invalidSkills()
	}
	return skills, nil
}

func (s *ProjectService) reload(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("project", err)
	}
	return project, nil
}

func invalidSkills() error {
	return invalid("one or more associated skills are invalid or do not belong to the user")
}
