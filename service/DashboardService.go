package service

import (
	"context"
	"fmt"

	"skilltracker/dto"
	"skilltracker/repository"

	"github.com/google/uuid"
)

const noCategory = "N/A"

type DashboardService struct {
	stats repository.StatsRepository
}

func NewDashboardService(stats repository.StatsRepository) *DashboardService {
	return &DashboardService{stats: stats}
}

func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*dto.DashboardStats, error) {
	certs, err := s.stats.CertificateCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count certificates: %w", err)
	}
	skills, err := s.stats.SkillCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count skills: %w", err)
	}
	projects, err := s.stats.ProjectCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	topCert, err := s.stats.TopCertificateCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to rank certificate categories: %w", err)
	}
	topSkill, err := s.stats.TopSkillCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to rank skill categories: %w", err)
	}

	return &dto.DashboardStats{
		Certificates:           dto.KindStats(certs),
		Skills:                 dto.KindStats(skills),
		Projects:               dto.KindStats(projects),
		TopCertificateCategory: orNA(topCert),
		TopSkillCategory:       orNA(topSkill),
	}, nil
}

func orNA(category string) string {
	if category == "" {
		return noCategory
	}
	return category
}
