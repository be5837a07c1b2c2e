package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
)

func TestSkillService_Create(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")
	bob := e.register(t, "Bob", "bob@example.com")

	skill, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "  Python "})
	require.NoError(t, err)
	assert.Equal(t, "python", skill.Name)
	assert.Equal(t, model.SkillCategoryOther, skill.Category)
	assert.Equal(t, model.SkillLevelBeginner, skill.Level)

	_, err = e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "PYTHON"})
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "skill with this name already exists")

	_, err = e.skills.Create(ctx, bob, &dto.CreateSkillRequest{Name: "Python"})
	assert.NoError(t, err, "names are unique per owner only")

	_, err = e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "   "})
	assert.True(t, IsValidation(err))
}

func TestSkillService_Update(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")
	bob := e.register(t, "Bob", "bob@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "python"})
	require.NoError(t, err)
	_, err = e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "go"})
	require.NoError(t, err)

	_, err = e.skills.Update(ctx, ann, py.ID.String(), &dto.UpdateSkillRequest{Name: ptr("Go")})
	assert.True(t, IsValidation(err))

	// renaming to itself with different case is not a conflict
	level := model.SkillLevelExpert
	updated, err := e.skills.Update(ctx, ann, py.ID.String(), &dto.UpdateSkillRequest{Name: ptr("Python"), Level: &level})
	require.NoError(t, err)
	assert.Equal(t, "python", updated.Name)
	assert.Equal(t, model.SkillLevelExpert, updated.Level)

	_, err = e.skills.Update(ctx, bob, py.ID.String(), &dto.UpdateSkillRequest{IsPublic: ptr(true)})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSkillService_DeleteUnlinksProjects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ann := e.register(t, "Ann", "ann@example.com")

	py, err := e.skills.Create(ctx, ann, &dto.CreateSkillRequest{Name: "python"})
	require.NoError(t, err)
	project, err := e.projects.Create(ctx, ann, &dto.CreateProjectRequest{
		Title:            "Scraper",
		Description:      "Collects things",
		AssociatedSkills: []string{py.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, project.AssociatedSkills, 1)

	require.NoError(t, e.skills.Delete(ctx, ann, py.ID.String()))

	reloaded, err := e.projects.Get(ctx, ann, project.ID.String())
	require.NoError(t, err)
	assert.Empty(t, reloaded.AssociatedSkills)

	skills, err := e.skills.List(ctx, ann, repository.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, skills)
}
