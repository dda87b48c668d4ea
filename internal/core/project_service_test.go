package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

func TestProjectService_Create(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	svc := NewProjectService(newFakeProjectRepo(), users)

	project, err := svc.Create(context.Background(), "uid-1", models.CreateProjectRequest{
		Name:        "Marketing Copy",
		Description: "Q3 campaign drafts",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "uid-1", project.OwnerID)
	assert.Equal(t, models.ProjectStatusActive, project.Status)
}

func TestProjectService_AddSheet(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	projects := newFakeProjectRepo()
	svc := NewProjectService(projects, users)

	project, err := svc.Create(context.Background(), "uid-1", models.CreateProjectRequest{Name: "Marketing Copy"})
	require.NoError(t, err)

	updated, err := svc.AddSheet(context.Background(), "uid-1", project.ID, "Headlines")
	require.NoError(t, err)
	require.Len(t, updated.Sheets, 1)
	assert.Equal(t, "Headlines", updated.Sheets[0].Name)
	assert.NotEmpty(t, updated.Sheets[0].ID)
	assert.False(t, updated.Sheets[0].CreatedAt.IsZero())

	assert.Equal(t, int64(1), users.users["uid-1"].Usage.SheetsCreated)
}

func TestProjectService_AddSheet_MissingProject(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	svc := NewProjectService(newFakeProjectRepo(), users)

	_, err := svc.AddSheet(context.Background(), "uid-1", "ghost", "Headlines")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Update_ArchivesProject(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	svc := NewProjectService(newFakeProjectRepo(), users)

	project, err := svc.Create(context.Background(), "uid-1", models.CreateProjectRequest{Name: "Marketing Copy"})
	require.NoError(t, err)

	status := models.ProjectStatusArchived
	updated, err := svc.Update(context.Background(), "uid-1", project.ID, models.UpdateProjectRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusArchived, updated.Status)
	assert.Equal(t, "Marketing Copy", updated.Name)
}

func TestProjectService_ListByOwner_ScopedToOwner(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	users.users["uid-2"] = &models.User{ID: "uid-2", Email: "grace@example.com"}
	svc := NewProjectService(newFakeProjectRepo(), users)

	_, err := svc.Create(context.Background(), "uid-1", models.CreateProjectRequest{Name: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "uid-2", models.CreateProjectRequest{Name: "Theirs"})
	require.NoError(t, err)

	mine, err := svc.ListByOwner(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
