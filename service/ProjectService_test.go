package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltracker/dto"
)

func TestProjectService_Create(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")
	bob := e.register(t, "Bob", "bob@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "python"})
	require.NoError(t, err)
	bobs, err := e.skills.Create(ctx, bob, &dto.CreateSkillRequest{Name: "rust"})
	require.NoError(t, err)

	project, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
		Title:            "Scraper",
		Description:      "Collects things",
		Technologies:     dto.StringList{"Go, SQL", " ", "Docker"},
		StartDate:        "2023-01-01",
		AssociatedSkills: []string{py.ID.String(), py.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, []string(project.Technologies))
	require.Len(t, project.AssociatedSkills, 1)
	assert.Equal(t, "python", project.AssociatedSkills[0].Name)
	assert.Nil(t, project.EndDate)

	cases := []struct {
		name   string
		skills []string
	}{
		{"foreign skill", []string{bobs.ID.String()}},
		{"unknown skill", []string{uuid.NewString()}},
		{"malformed id", []string{"nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
				Title: "x", Description: "y", AssociatedSkills: tc.skills,
			})
			assert.True(t, IsValidation(err))
			assert.EqualError(t, err, "one or more associated skills are invalid or do not belong to the user")
		})
	}

	t.Run("description required", func(t *testing.T) {
		_, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{Title: "x"})
		assert.True(t, IsValidation(err))
	})
}

func TestProjectService_UpdateSkills(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "python"})
	require.NoError(t, err)
	goSkill, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "go"})
	require.NoError(t, err)

	project, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
		Title: "Scraper", Description: "d", AssociatedSkills: []string{py.ID.String()},
	})
	require.NoError(t, err)
	id := project.ID.String()

	// omitted list keeps the links
	updated, err := e.projects.Update(ctx, ann, id, &dto.UpdateProjectRequest{Title: ptr("Crawler")})
	require.NoError(t, err)
	assert.Equal(t, "Crawler", updated.Title)
	require.Len(t, updated.AssociatedSkills, 1)

	replaced := []string{goSkill.ID.String(), py.ID.String()}
	updated, err = e.projects.Update(ctx, ann, id, &dto.UpdateProjectRequest{AssociatedSkills: &replaced})
	require.NoError(t, err)
	require.Len(t, updated.AssociatedSkills, 2)
	assert.Equal(t, "go", updated.AssociatedSkills[0].Name)

	empty := []string{}
	updated, err = e.projects.Update(ctx, ann, id, &dto.UpdateProjectRequest{AssociatedSkills: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.AssociatedSkills)

	tech := dto.StringList{"Go,Fiber"}
	updated, err = e.projects.Update(ctx, ann, id, &dto.UpdateProjectRequest{Technologies: &tech, EndDate: ptr("2024-05-01")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Fiber"}, []string(updated.Technologies))
	require.NotNil(t, updated.EndDate)

	updated, err = e.projects.Update(ctx, ann, id, &dto.UpdateProjectRequest{EndDate: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate, "empty date clears it")
}

func TestProjectService_Delete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")
	bob := e.register(t, "Bob", "bob@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "python"})
	require.NoError(t, err)
	project, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
		Title: "Scraper", Description: "d", AssociatedSkills: []string{py.ID.String()},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, e.projects.Delete(ctx, bob, project.ID.String()), ErrNotAuthorized)
	require.NoError(t, e.projects.Delete(ctx, ann, project.ID.String()))

	_, err = e.projects.Get(ctx, ann, project.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.skills.Get(ctx, ann, py.ID.String())
	assert.NoError(t, err, "skills outlive their projects")
}
