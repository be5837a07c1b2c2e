package repository

import (
	"context"

	"skilltracker/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository interface {
	// Create stores the project and links its AssociatedSkills, which must already exist.
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Project, error)
	// ListPublic returns the owner's public projects; order is left to the caller.
	ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	// Update saves scalar fields; when replaceSkills is set the skill links are replaced too.
	Update(ctx context.Context, project *model.Project, replaceSkills bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &pgProjectRepo{db: db}
}

func (r *pgProjectRepo) Create(ctx context.Context, project *model.Project) error {
	return translate(r.db.WithContext(ctx).Omit("AssociatedSkills.*").Create(project).Error)
}

func (r *pgProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("AssociatedSkills", orderByName).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *pgProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Project, error) {
	q := r.db.WithContext(ctx).Preload("AssociatedSkills", orderByName).Where("user_id = ?", userID)
	if filter.IsPublic != nil {
		q = q.Where("is_public = ?", *filter.IsPublic)
	}

	projects := []model.Project{}
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *pgProjectRepo) ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	projects := []model.Project{}
	err := r.db.WithContext(ctx).
		Preload("AssociatedSkills", orderByName).
		Where("user_id = ? AND is_public = ?", userID, true).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *pgProjectRepo) Update(ctx context.Context, project *model.Project, replaceSkills bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return translate(err)
		}
		if !replaceSkills {
			return nil
		}
		return tx.Model(project).Association("AssociatedSkills").Replace(project.AssociatedSkills)
	})
}

func (r *pgProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("AssociatedSkills").Delete(&model.Project{ID: id}).Error
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
