package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestProjectLifecycle(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	got, err := f.svc.Projects.Get(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, "Conveyor Line", got.Name)
	assert.Equal(t, models.ProjectStatusActive, got.Status)

	mine, err := f.svc.Projects.ListForUser(ctx, testOwnerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := f.svc.Projects.ListForUser(ctx, testOwnerID+1)
	require.NoError(t, err)
	assert.Empty(t, none)

	// Delete cascades to the project's stages.
	require.NoError(t, f.svc.Projects.Delete(ctx, f.project.ID, testOwnerID))
	_, err = f.svc.Projects.Get(ctx, f.project.ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNotFound)

	stages, err := f.store.Stages.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)
}

func TestProjectCreate_Validation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.svc.Projects.Create(ctx, testOwnerID, "   ", "")
	assert.True(t, IsValidationError(err))

	_, err = f.svc.Projects.Create(ctx, 0, "Valid Name", "")
	assert.True(t, IsValidationError(err))
}

func TestProjectDelete_Ownership(t *testing.T) {
	f := newFixture(t, 0)
	err := f.svc.Projects.Delete(context.Background(), f.project.ID, testOwnerID+1)
	assert.ErrorIs(t, err, ErrForbidden)
}
