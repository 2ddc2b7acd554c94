package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

func testProject(ownerID uuid.UUID) *models.Project {
	return &models.Project{
		ID:      uuid.New(),
		UserID:  ownerID,
		Name:    "Lakeview Meadows",
		Builder: "Aparna Constructions",
		City:    "Hyderabad",
		State:   "Telangana",
	}
}

func TestProjectListPagination(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.total = 37
	svc := NewProjectService(repo, &fakeUploader{})

	_, pg, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Equal(t, 10, repo.listLimit)
	require.Equal(t, 10, repo.listOffset)
	require.Equal(t, 2, pg.CurrentPage)
	require.Equal(t, 4, pg.TotalPages)
	require.Equal(t, int64(37), pg.TotalCount)
	require.True(t, pg.HasNextPage)
	require.True(t, pg.HasPreviousPage)
}

func TestProjectSetArchivedOwnership(t *testing.T) {
	owner := uuid.New()
	p := testProject(owner)
	repo := newFakeProjectRepo(p)
	svc := NewProjectService(repo, &fakeUploader{})
	ctx := context.Background()

	_, err := svc.SetArchived(ctx, uuid.New(), p.ID, true)
	require.ErrorIs(t, err, utils.ErrNotOwner)
	require.False(t, p.IsArchived)

	_, err = svc.SetArchived(ctx, owner, uuid.New(), true)
	require.ErrorIs(t, err, utils.ErrProjectNotFound)

	out, err := svc.SetArchived(ctx, owner, p.ID, true)
	require.NoError(t, err)
	require.True(t, out.IsArchived)

	out, err = svc.SetArchived(ctx, owner, p.ID, false)
	require.NoError(t, err)
	require.False(t, out.IsArchived)
}

func TestProjectUpdate(t *testing.T) {
	owner := uuid.New()
	p := testProject(owner)
	repo := newFakeProjectRepo(p)
	svc := NewProjectService(repo, &fakeUploader{})
	ctx := context.Background()

	req := dtos.UpdateProjectRequest{
		ProjectID: p.ID.String(),
		Name:      "Lakeview Meadows Phase 2",
		Builder:   "Aparna Constructions",
		City:      "Hyderabad",
		State:     "Telangana",
		Locality:  "Nallagandla",
		Images:    []string{"data:image/jpeg;base64,AAAA"},
		Brochure:  utils.Ptr("data:application/pdf;base64,BBBB"),
	}

	out, err := svc.Update(ctx, owner, req)
	require.NoError(t, err)
	require.Equal(t, "Lakeview Meadows Phase 2", out.Name)
	require.Len(t, out.ImageURLs, 1)
	require.NotNil(t, out.BrochureURL)

	req.ProjectID = "not-a-uuid"
	_, err = svc.Update(ctx, owner, req)
	require.ErrorIs(t, err, utils.ErrProjectNotFound)

	req.ProjectID = p.ID.String()
	_, err = svc.Update(ctx, uuid.New(), req)
	require.ErrorIs(t, err, utils.ErrNotOwner)

	failing := NewProjectService(repo, &fakeUploader{uploadErr: utils.ErrUploadFailed})
	_, err = failing.Update(ctx, owner, req)
	require.ErrorIs(t, err, utils.ErrUploadFailed)
}
