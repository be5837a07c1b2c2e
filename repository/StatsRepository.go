package repository

import (
	"context"

	"skilltracker/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentCounts struct {
	Total  int64
	Public int64
}

// StatsRepository aggregates an owner's content for the dashboard.
type StatsRepository interface {
	CertificateCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error)
	SkillCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error)
	ProjectCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error)
	// Top*Category return "" when the owner has no records of that kind.
	TopCertificateCategory(ctx context.Context, userID uuid.UUID) (string, error)
	TopSkillCategory(ctx context.Context, userID uuid.UUID) (string, error)
}

type pgStatsRepo struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &pgStatsRepo{db: db}
}

func (r *pgStatsRepo) CertificateCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error) {
	return r.counts(ctx, &model.Certificate{}, userID)
}

func (r *pgStatsRepo) SkillCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error) {
	return r.counts(ctx, &model.Skill{}, userID)
}

func (r *pgStatsRepo) ProjectCounts(ctx context.Context, userID uuid.UUID) (ContentCounts, error) {
	return r.counts(ctx, &model.Project{}, userID)
}

func (r *pgStatsRepo) TopCertificateCategory(ctx context.Context, userID uuid.UUID) (string, error) {
	return r.topCategory(ctx, &model.Certificate{}, userID)
}

func (r *pgStatsRepo) TopSkillCategory(ctx context.Context, userID uuid.UUID) (string, error) {
	return r.topCategory(ctx, &model.Skill{}, userID)
}

func (r *pgStatsRepo) counts(ctx context.Context, m interface{}, userID uuid.UUID) (ContentCounts, error) {
	var c ContentCounts
	err := r.db.WithContext(ctx).Model(m).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_public THEN 1 ELSE 0 END), 0) AS public").
		Where("user_id = ?", userID).
		Scan(&c).Error
	return c, err
}

// topCategory picks the most used category; ties go to the alphabetically first.
func (r *pgStatsRepo) topCategory(ctx context.Context, m interface{}, userID uuid.UUID) (string, error) {
	var rows []struct {
		Category string
		N        int64
	}
	err := r.db.WithContext(ctx).Model(m).
		Select("category, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("category").
		Order("n DESC, category ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return "", err
	}
	return rows[0].Category, nil
}
