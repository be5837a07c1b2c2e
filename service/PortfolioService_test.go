package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/util"
)

func TestPortfolioService_Publish(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	cfg, err := e.portfolio.GetSettings(ctx, ann)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Nil(t, cfg.PublicID)

	cfg, err = e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)
	require.NotNil(t, cfg.PublicID)
	publicID := *cfg.PublicID

	assert.Eventually(t, func() bool { return e.mailer.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Contains(t, e.mailer.last(), "https://skilltracker.test/portfolio/"+publicID)

	cfg, err = e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, publicID, *cfg.PublicID, "enabling twice keeps the id")

	cfg, err = e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(false)})
	require.NoError(t, err)
	require.NotNil(t, cfg.PublicID)
	assert.Equal(t, publicID, *cfg.PublicID, "disabling keeps the id")

	_, err = e.portfolio.GetPublic(ctx, publicID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "public portfolio not found or not enabled")

	cfg, err = e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, publicID, *cfg.PublicID)
	assert.Equal(t, 1, e.mailer.count(), "mail only on first publish")

	_, err = e.portfolio.GetPublic(ctx, publicID)
	assert.NoError(t, err)
}

func TestPortfolioService_PublicIDRetries(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")
	bob := e.register(t, "Bob", "bob@example.com")

	e.portfolio.newPublicID = sequence("taken")
	_, err := e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)

	e.portfolio.newPublicID = sequence("taken", "taken", "fresh")
	cfg, err := e.portfolio.UpdateSettings(ctx, bob, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "fresh", *cfg.PublicID)

	carol := e.register(t, "Carol", "carol@example.com")
	e.portfolio.newPublicID = func() string { return "taken" }
	_, err = e.portfolio.UpdateSettings(ctx, carol, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	assert.Error(t, err)
	assert.False(t, IsValidation(err))

	cfg, err = e.portfolio.GetSettings(ctx, carol)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled, "failed publish is not persisted")
}

// sequence hands out ids in order, repeating the last one.
func sequence(ids ...string) func() string {
	return func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}
}

func TestPortfolioService_Settings(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	cfg, err := e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{
		Theme: ptr(model.ThemeDark),
		Settings: &dto.PortfolioSettingsPatch{
			ShowSkills:   ptr(false),
			AboutMe:      ptr("Hi"),
			SectionOrder: []model.Section{model.SectionProjects},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, cfg.Theme)
	assert.False(t, cfg.Settings.ShowSkills)
	assert.True(t, cfg.Settings.ShowCertificates, "unset flags untouched")
	assert.Equal(t, []model.Section{model.SectionProjects, model.SectionCertificates, model.SectionSkills},
		[]model.Section(cfg.Settings.SectionOrder))

	cases := []struct {
		name string
		req  dto.UpdatePortfolioRequest
	}{
		{"bad theme", dto.UpdatePortfolioRequest{Theme: ptr(model.Theme("neon"))}},
		{"unknown section", dto.UpdatePortfolioRequest{Settings: &dto.PortfolioSettingsPatch{
			SectionOrder: []model.Section{"blog"},
		}}},
		{"duplicate section", dto.UpdatePortfolioRequest{Settings: &dto.PortfolioSettingsPatch{
			SectionOrder: []model.Section{model.SectionSkills, model.SectionSkills},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.portfolio.UpdateSettings(ctx, ann, &tc.req)
			assert.True(t, IsValidation(err))
		})
	}

	cfg, err = e.portfolio.GetSettings(ctx, ann)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, cfg.Theme, "rejected patches change nothing")

	_, err = e.portfolio.GetSettings(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPortfolioService_GetPublic(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "Python", IsPublic: true})
	require.NoError(t, err)
	_, err = e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "secret"})
	require.NoError(t, err)

	_, err = e.certs.Create(ctx, ann, &dto.CreateCertificateRequest{Title: "Hidden"}, pdf)
	require.NoError(t, err)

	mk := func(title, start, end string) {
		t.Helper()
		_, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
			Title: title, Description: "d", StartDate: start, EndDate: end, IsPublic: true,
			AssociatedSkills: []string{py.ID.String()},
		})
		require.NoError(t, err)
	}
	mk("old", "2020-01-01", "2020-06-01")
	mk("recent", "2022-01-01", "2023-06-01")
	mk("ongoing", "2024-01-01", "")
	mk("recent-later-start", "2022-09-01", "2023-06-01")

	cfg, err := e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{
		Enabled: ptr(true),
		Settings: &dto.PortfolioSettingsPatch{
			AboutMe:      ptr("**hello** <script>x</script>"),
			SectionOrder: []model.Section{model.SectionSkills, model.SectionProjects},
		},
	})
	require.NoError(t, err)

	pub, err := e.portfolio.GetPublic(ctx, *cfg.PublicID)
	require.NoError(t, err)

	assert.Equal(t, "Ann", pub.User.Name)
	assert.Contains(t, pub.User.AboutMeHTML, "<strong>hello</strong>")
	assert.NotContains(t, pub.User.AboutMeHTML, "<script>")

	assert.Empty(t, pub.Certificates, "private certificates are hidden")
	require.Len(t, pub.Skills, 1)
	assert.Equal(t, "python", pub.Skills[0].Name)

	titles := make([]string, 0, len(pub.Projects))
	for _, p := range pub.Projects {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"ongoing", "recent-later-start", "recent", "old"}, titles)
	assert.Equal(t, "python", pub.Projects[0].AssociatedSkills[0].Name)

	assert.Equal(t, []model.Section{model.SectionSkills, model.SectionProjects}, pub.Sections,
		"empty sections are left out")

	_, err = e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{
		Settings: &dto.PortfolioSettingsPatch{ShowSkills: ptr(false)},
	})
	require.NoError(t, err)

	pub, err = e.portfolio.GetPublic(ctx, *cfg.PublicID)
	require.NoError(t, err)
	assert.Empty(t, pub.Skills)
	assert.Equal(t, []model.Section{model.SectionProjects}, pub.Sections)

	_, err = e.portfolio.GetPublic(ctx, util.NewPublicID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSortProjects(t *testing.T) {
	day := func(s string) *time.Time {
		d, err := util.ParseDate(s)
		require.NoError(t, err)
		return d
	}
	projects := []model.Project{
		{Title: "a", EndDate: day("2021-01-01")},
		{Title: "b"},
		{Title: "c", EndDate: day("2023-01-01")},
		{Title: "d", StartDate: day("2022-01-01")},
	}
	sortProjects(projects)

	var got []string
	for _, p := range projects {
		got = append(got, p.Title)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, got)
}

func TestNormalizeSectionOrder(t *testing.T) {
	assert.Equal(t, model.Sections(), normalizeSectionOrder(nil))
	assert.Equal(t,
		[]model.Section{model.SectionSkills, model.SectionCertificates, model.SectionProjects},
		normalizeSectionOrder([]model.Section{"blog", model.SectionSkills, model.SectionSkills}))
}

func TestPortfolioService_GetPublicShowsPrivateLinkedSkills(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	hidden, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "hidden"})
	require.NoError(t, err)
	require.False(t, hidden.IsPublic)

	_, err = e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
		Title: "Tool", Description: "d", IsPublic: true,
		AssociatedSkills: []string{hidden.ID.String()},
	})
	require.NoError(t, err)

	cert, err := e.certs.Create(ctx, ann, &dto.CreateCertificateRequest{Title: "Go", IsPublic: true}, pdf)
	require.NoError(t, err)

	cfg, err := e.portfolio.UpdateSettings(ctx, ann, &dto.UpdatePortfolioRequest{Enabled: ptr(true)})
	require.NoError(t, err)

	pub, err := e.portfolio.GetPublic(ctx, *cfg.PublicID)
	require.NoError(t, err)

	assert.Empty(t, pub.Skills, "private skill stays out of the skills section")
	require.Len(t, pub.Projects, 1)
	require.Len(t, pub.Projects[0].AssociatedSkills, 1)
	assert.Equal(t, hidden.ID, pub.Projects[0].AssociatedSkills[0].ID)
	assert.Equal(t, "hidden", pub.Projects[0].AssociatedSkills[0].Name)

	require.Len(t, pub.Certificates, 1)
	assert.Equal(t, cert.ID, pub.Certificates[0].ID)
	assert.Equal(t, cert.FileURL, pub.Certificates[0].FileURL)
	assert.Equal(t, []model.Section{model.SectionCertificates, model.SectionProjects}, pub.Sections)
}
