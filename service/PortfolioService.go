package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
	"skilltracker/util"

	"github.com/google/uuid"
)

// maxPublicIDAttempts bounds the search for an unused public identifier.
const maxPublicIDAttempts = 5

type PortfolioService struct {
	users        repository.UserRepository
	certificates repository.CertificateRepository
	skills       repository.SkillRepository
	projects     repository.ProjectRepository
	mailer       Mailer
	baseURL      string
	newPublicID  func() string
}

func NewPortfolioService(
	users repository.UserRepository,
	certificates repository.CertificateRepository,
	skills repository.SkillRepository,
	projects repository.ProjectRepository,
	mailer Mailer,
	baseURL string,
) *PortfolioService {
	return &PortfolioService{
		users:        users,
		certificates: certificates,
		skills:       skills,
		projects:     projects,
		mailer:       mailer,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		newPublicID:  util.NewPublicID,
	}
}

func (s *PortfolioService) GetSettings(ctx context.Context, userID uuid.UUID) (*model.PortfolioConfig, error) {
	user, err := s.loadOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := user.Portfolio
	cfg.Settings.SectionOrder = normalizeSectionOrder(cfg.Settings.SectionOrder)
	return &cfg, nil
}

// UpdateSettings applies a partial patch. Enabling the portfolio for the
// first time assigns a public id, which is kept from then on.
func (s *PortfolioService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdatePortfolioRequest) (*model.PortfolioConfig, error) {
	user, err := s.loadOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg := &user.Portfolio
	firstPublish := false

	if req.Theme != nil {
		if !req.Theme.IsValid() {
			return nil, invalid("theme has an invalid value %q", *req.Theme)
		}
		cfg.Theme = *req.Theme
	}

	if p := req.Settings; p != nil {
		if p.ShowCertificates != nil {
			cfg.Settings.ShowCertificates = *p.ShowCertificates
		}
		if p.ShowSkills != nil {
			cfg.Settings.ShowSkills = *p.ShowSkills
		}
		if p.ShowProjects != nil {
			cfg.Settings.ShowProjects = *p.ShowProjects
		}
		if p.AboutMe != nil {
			cfg.Settings.AboutMe = *p.AboutMe
		}
		if p.SectionOrder != nil {
			if err := checkSectionOrder(p.SectionOrder); err != nil {
				return nil, err
			}
			cfg.Settings.SectionOrder = p.SectionOrder
		}
	}
	cfg.Settings.SectionOrder = normalizeSectionOrder(cfg.Settings.SectionOrder)

	if req.Enabled != nil {
		cfg.Enabled = *req.Enabled
	}
	if cfg.Enabled && cfg.PublicID == nil {
		id, err := s.uniquePublicID(ctx)
		if err != nil {
			return nil, err
		}
		cfg.PublicID = &id
		firstPublish = true
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update portfolio settings: %w", err)
	}

	if firstPublish {
		s.notifyPublished(*user)
	}
	return cfg, nil
}

// GetPublic assembles the visitor view of a published portfolio. Unknown
// and disabled portfolios both yield ErrNotFound.
func (s *PortfolioService) GetPublic(ctx context.Context, publicID string) (*dto.PublicPortfolio, error) {
	user, err := s.users.GetPublished(ctx, publicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("public portfolio %w or not enabled", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve portfolio: %w", err)
	}

	settings := user.Portfolio.Settings
	settings.SectionOrder = normalizeSectionOrder(settings.SectionOrder)

	out := &dto.PublicPortfolio{
		Certificates: []dto.PublicCertificate{},
		Skills:       []model.Skill{},
		Projects:     []dto.ProjectResponse{},
	}

	if settings.ShowCertificates {
		certs, err := s.certificates.ListPublic(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load certificates: %w", err)
		}
		out.Certificates = dto.NewPublicCertificates(certs)
	}
	if settings.ShowSkills {
		if out.Skills, err = s.skills.ListPublic(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to load skills: %w", err)
		}
	}
	if settings.ShowProjects {
		projects, err := s.projects.ListPublic(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load projects: %w", err)
		}
		sortProjects(projects)
		out.Projects = dto.NewProjectResponses(projects)
	}

	aboutHTML, err := util.RenderMarkdown(settings.AboutMe)
	if err != nil {
		slog.Warn("failed to render about me", "user_id", user.ID, "error", err)
	}

	out.User = dto.PublicOwner{
		Name:        user.Name,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		Theme:       user.Portfolio.Theme,
		Settings:    settings,
		AboutMeHTML: aboutHTML,
	}

	counts := map[model.Section]int{
		model.SectionCertificates: len(out.Certificates),
		model.SectionSkills:       len(out.Skills),
		model.SectionProjects:     len(out.Projects),
	}
	out.Sections = []model.Section{}
	for _, section := range settings.SectionOrder {
		if settings.Shows(section) && counts[section] > 0 {
			out.Sections = append(out.Sections, section)
		}
	}
	return out, nil
}

// PublicURL is the shareable address of a portfolio.
func (s *PortfolioService) PublicURL(publicID string) string {
	return s.baseURL + "/portfolio/" + publicID
}

func (s *PortfolioService) loadOwner(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *PortfolioService) uniquePublicID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxPublicIDAttempts; attempt++ {
		candidate := s.newPublicID()
		taken, err := s.users.PublicIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check public id: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		slog.Warn("public id collision, retrying", "attempt", attempt+1)
	}
	return "", fmt.Errorf("failed to generate a unique public id after %d attempts", maxPublicIDAttempts)
}

func (s *PortfolioService) notifyPublished(user model.User) {
	url := s.PublicURL(*user.Portfolio.PublicID)
	go func() {
		if err := s.mailer.SendPortfolioPublished(user.Email, user.Name, url); err != nil {
			slog.Warn("failed to send portfolio published mail", "user_id", user.ID, "error", err)
			return
		}
		slog.Info("portfolio published mail sent", "user_id", user.ID)
	}()
}

func checkSectionOrder(order []model.Section) error {
	seen := make(map[model.Section]bool, len(order))
	for _, section := range order {
		if !section.IsValid() {
			return invalid("sectionOrder has an unknown section %q", section)
		}
		if seen[section] {
			return invalid("sectionOrder must not contain duplicates")
		}
		seen[section] = true
	}
	return nil
}

// normalizeSectionOrder keeps the known sections in the given order, drops
// unknown or repeated names and appends any missing section in default order.
func normalizeSectionOrder(order []model.Section) []model.Section {
	out := make([]model.Section, 0, len(model.Sections()))
	seen := map[model.Section]bool{}
	for _, section := range order {
		if section.IsValid() && !seen[section] {
			seen[section] = true
			out = append(out, section)
		}
	}
	for _, section := range model.Sections() {
		if !seen[section] {
			out = append(out, section)
		}
	}
	return out
}

// sortProjects orders ongoing projects (no end date) first, then by end
// date descending; ties fall back to start date descending.
func sortProjects(projects []model.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if c := compareDesc(a.EndDate, b.EndDate); c != 0 {
			return c < 0
		}
		return compareDesc(a.StartDate, b.StartDate) < 0
	})
}

// compareDesc returns -1 when a sorts before b: nil first, later dates next.
func compareDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.After(*b):
		return -1
	case b.After(*a):
		return 1
	}
	return 0
}
