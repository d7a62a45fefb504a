package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	util "github.com/nexus-controls/plcforge/test/util"
)

// newEntStore spins up a per-test schema on the shared Postgres container
// and wraps it in the ent-backed store.
func newEntStore(t *testing.T) *repository.Store {
	entClient, _ := util.SetupTestDatabase(t)
	return repository.NewEntStore(entClient)
}

func seedProject(t *testing.T, store *repository.Store) *models.Project {
	t.Helper()
	project, err := store.Projects.Create(context.Background(), &models.Project{
		Name:    "Conveyor Line",
		OwnerID: 42,
	})
	require.NoError(t, err)
	return project
}

func seedStage(t *testing.T, store *repository.Store, projectID, number int) *models.Stage {
	t.Helper()
	stage, err := store.Stages.Create(context.Background(), &models.Stage{
		ProjectID:     projectID,
		StageNumber:   number,
		StageName:     "Run",
		StageType:     models.StageTypeOperation,
		OriginalLogic: "start the conveyor when the button is pressed",
	})
	require.NoError(t, err)
	return stage
}

func TestEntProjects(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)
	assert.Equal(t, models.ProjectStatusActive, project.Status)

	got, err := store.Projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.Name, got.Name)
	assert.Equal(t, 42, got.OwnerID)

	mine, err := store.Projects.ListForUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := store.Projects.ListForUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = store.Projects.GetByID(ctx, project.ID+1000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntStageLifecycle(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)
	stage := seedStage(t, store, project.ID, 1)
	assert.Equal(t, models.InitialVersion, stage.VersionNumber)
	assert.False(t, stage.IsValidated)

	require.NoError(t, store.Stages.MarkValidated(ctx, stage.ID))
	got, err := store.Stages.GetByID(ctx, stage.ID)
	require.NoError(t, err)
	assert.True(t, got.IsValidated)

	// Editing the logic resets the validation verdict.
	require.NoError(t, store.Stages.UpdateLogic(ctx, stage.ID, "stop after 10 seconds"))
	got, err = store.Stages.GetByID(ctx, stage.ID)
	require.NoError(t, err)
	assert.False(t, got.IsValidated)
	assert.Equal(t, "stop after 10 seconds", got.EditedLogic)
	assert.Equal(t, "start the conveyor when the button is pressed", got.OriginalLogic)

	at := time.Now().UTC()
	require.NoError(t, store.Stages.UpdateVersionMetadata(ctx, stage.ID, "1.0.1", models.ActionEditLogic, at))
	got, err = store.Stages.GetByID(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", got.VersionNumber)
	assert.Equal(t, models.ActionEditLogic, got.LastAction)
	require.NotNil(t, got.LastActionTimestamp)

	seedStage(t, store, project.ID, 2)
	stages, err := store.Stages.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, 1, stages[0].StageNumber)
	assert.Equal(t, 2, stages[1].StageNumber)

	require.NoError(t, store.Stages.DeleteProjectStages(ctx, project.ID))
	stages, err = store.Stages.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)
}

func TestEntCodes(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)
	stage1 := seedStage(t, store, project.ID, 1)
	stage2 := seedStage(t, store, project.ID, 2)

	code1, err := store.Codes.Create(ctx, &models.GeneratedCode{
		ProjectID:     project.ID,
		StageID:       stage1.ID,
		GlobalLabels:  []models.Label{{Name: "Start_Button", DataType: "Bool", Device: "X0"}},
		ProgramBody:   "Run_1 := Start_Button;",
		ProgramName:   "STAGE_1",
		ExecutionType: models.ExecutionScan,
	})
	require.NoError(t, err)

	_, err = store.Codes.Create(ctx, &models.GeneratedCode{
		ProjectID:     project.ID,
		StageID:       stage2.ID,
		GlobalLabels:  []models.Label{{Name: "Sensor1", DataType: "Bool", Device: "X1"}},
		ProgramBody:   "Run_2 := Sensor1;",
		ProgramName:   "STAGE_2",
		ExecutionType: models.ExecutionScan,
	})
	require.NoError(t, err)

	got, err := store.Codes.GetByStage(ctx, stage1.ID)
	require.NoError(t, err)
	assert.Equal(t, code1.ID, got.ID)

	// Unify global labels across every row of the project.
	unified := []models.Label{
		{Name: "Start_Button", DataType: "Bool", Device: "X0"},
		{Name: "Sensor1", DataType: "Bool", Device: "X1"},
	}
	require.NoError(t, store.Codes.UpdateGlobalLabels(ctx, project.ID, unified))

	codes, err := store.Codes.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	for _, code := range codes {
		assert.Equal(t, unified, code.GlobalLabels)
	}

	require.NoError(t, store.Codes.DeleteByStage(ctx, stage1.ID))
	_, err = store.Codes.GetByStage(ctx, stage1.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting with no row present is a no-op.
	require.NoError(t, store.Codes.DeleteByStage(ctx, stage1.ID))
}

func TestEntVersionLedger(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)
	stage := seedStage(t, store, project.ID, 1)

	base := time.Now().UTC().Add(-time.Minute)
	for i, version := range []string{"1.0.1", "1.1.0", "1.1.1"} {
		_, err := store.Versions.Append(ctx, &models.VersionEntry{
			StageID:       stage.ID,
			UserID:        42,
			VersionNumber: version,
			Timestamp:     base.Add(time.Duration(i) * time.Second),
			Metadata:      map[string]any{"action": models.ActionEditLogic},
		})
		require.NoError(t, err)
	}

	entries, err := store.Versions.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "1.1.1", entries[0].VersionNumber)
	assert.Equal(t, "1.0.1", entries[2].VersionNumber)

	entry, err := store.Versions.ByVersion(ctx, stage.ID, "1.1.0")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", entry.VersionNumber)
	assert.Equal(t, models.ActionEditLogic, entry.Metadata["action"])

	_, err = store.Versions.ByVersion(ctx, stage.ID, "9.9.9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntManualsAndFiles(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)

	manual, err := store.Manuals.Create(ctx, &models.SafetyManual{
		ProjectID: project.ID,
		Filename:  "safety.pdf",
		FilePath:  "/uploads/safety.pdf",
	})
	require.NoError(t, err)
	assert.False(t, manual.IsEmbedded)

	require.NoError(t, store.Manuals.MarkEmbedded(ctx, manual.ID))
	got, err := store.Manuals.GetByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, got.IsEmbedded)

	require.NoError(t, store.Manuals.DeleteByProject(ctx, project.ID))
	_, err = store.Manuals.GetByProject(ctx, project.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	file, err := store.Files.Create(ctx, &models.UploadedFile{
		ProjectID:        project.ID,
		UserID:           42,
		FileType:         "pdf",
		OriginalFilename: "line_a.pdf",
		StoredFilename:   "abc123.pdf",
		FilePath:         "/uploads/abc123.pdf",
		FileSize:         1024,
	})
	require.NoError(t, err)

	files, err := store.Files.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, file.ID, files[0].ID)
}

func TestEntProjectCascadeDelete(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	project := seedProject(t, store)
	stage := seedStage(t, store, project.ID, 1)
	_, err := store.Codes.Create(ctx, &models.GeneratedCode{
		ProjectID:     project.ID,
		StageID:       stage.ID,
		ProgramBody:   "Run_1 := TRUE;",
		ProgramName:   "STAGE_1",
		ExecutionType: models.ExecutionScan,
	})
	require.NoError(t, err)

	require.NoError(t, store.Projects.HardDelete(ctx, project.ID))

	_, err = store.Projects.GetByID(ctx, project.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	stages, err := store.Stages.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)
	codes, err := store.Codes.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
