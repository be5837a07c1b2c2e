package repository

import (
	"context"

	"skilltracker/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	// GetByName looks up an owner's skill by its already case-folded name.
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*model.Skill, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Skill, error)
	ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Skill, error)
	// ListOwned returns those of ids that belong to userID.
	ListOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgSkillRepo struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &pgSkillRepo{db: db}
}

func (r *pgSkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	return translate(r.db.WithContext(ctx).Create(skill).Error)
}

func (r *pgSkillRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var s model.Skill
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *pgSkillRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (*model.Skill, error) {
	var s model.Skill
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *pgSkillRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Skill, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.IsPublic != nil {
		q = q.Where("is_public = ?", *filter.IsPublic)
	}

	skills := []model.Skill{}
	if err := q.Order("created_at DESC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *pgSkillRepo) ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	skills := []model.Skill{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_public = ?", userID, true).
		Order("updated_at DESC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *pgSkillRepo) ListOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.Skill, error) {
	skills := []model.Skill{}
	if len(ids) == 0 {
		return skills, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *pgSkillRepo) Update(ctx context.Context, skill *model.Skill) error {
	return translate(r.db.WithContext(ctx).Save(skill).Error)
}

// Delete drops the skill and its project associations; projects are kept.
func (r *pgSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_skills WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Skill{}, "id = ?", id).Error
	})
}
