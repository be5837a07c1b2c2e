package service

import (
	"context"
	"errors"
	"fmt"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
	"skilltracker/util"

	"github.com/google/uuid"
)

type SkillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

// Create stores a skill. Names are case-folded, so "Python" and "python"
// collide for the same owner.
func (s *SkillService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSkillRequest) (*model.Skill, error) {
	name := util.NormalizeName(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	if err := s.ensureNameFree(ctx, userID, name, uuid.Nil); err != nil {
		return nil, err
	}

	skill := &model.Skill{
		UserID:      userID,
		Name:        name,
		Category:    req.Category,
		Level:       req.Level,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if skill.Category == "" {
		skill.Category = model.SkillCategoryOther
	}
	if skill.Level == "" {
		skill.Level = model.SkillLevelBeginner
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil, duplicateSkill()
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) List(ctx context.Context, userID uuid.UUID, filter repository.ListFilter) ([]model.Skill, error) {
	skills, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) Get(ctx context.Context, userID uuid.UUID, id string) (*model.Skill, error) {
	skillID, err := parseID(id)
	if err != nil {
		return nil, lookupErr("skill", err)
	}
	skill, err := s.repo.GetByID(ctx, skillID)
	if err != nil {
		return nil, lookupErr("skill", err)
	}
	if skill.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, userID uuid.UUID, id string, req *dto.UpdateSkillRequest) (*model.Skill, error) {
	skill, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := util.NormalizeName(*req.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		if name != skill.Name {
			if err := s.ensureNameFree(ctx, userID, name, skill.ID); err != nil {
				return nil, err
			}
			skill.Name = name
		}
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.IsPublic != nil {
		skill.IsPublic = *req.IsPublic
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil, duplicateSkill()
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// Delete removes the skill and unlinks it from any project.
func (s *SkillService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	skill, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, skill.ID); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func (s *SkillService) ensureNameFree(ctx context.Context, userID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, userID, name)
	switch {
	case err == nil && existing.ID != self:
		return duplicateSkill()
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return fmt.Errorf("failed to check skill name: %w", err)
	}
	return nil
}

func duplicateSkill() error {
	return invalid("skill with this name already exists")
}
