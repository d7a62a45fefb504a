package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

func TestMemoryDeleteProjectStages_CascadesToCodes(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	project := seedProject(t, store)
	stage := seedStage(t, store, project.ID, 0)
	other := seedProject(t, store)
	otherStage := seedStage(t, store, other.ID, 0)

	for _, s := range []*models.Stage{stage, otherStage} {
		_, err := store.Codes.Create(ctx, &models.GeneratedCode{
			ProjectID:   s.ProjectID,
			StageID:     s.ID,
			ProgramBody: "Run := TRUE;",
			ProgramName: "MAIN",
		})
		require.NoError(t, err)
	}

	// Re-planning a project must not leave code rows behind, matching the
	// stage→code ON DELETE CASCADE in the Postgres schema.
	require.NoError(t, store.Stages.DeleteProjectStages(ctx, project.ID))

	codes, err := store.Codes.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, codes)

	kept, err := store.Codes.ListByProject(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other projects' code rows survive")
}
