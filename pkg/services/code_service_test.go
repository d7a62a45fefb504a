package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestGenerateProjectCode_RequiresValidatedStages(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	// Validate only the first stage.
	_, err := f.svc.Stages.Validate(ctx, f.stages(t)[0].ID, testOwnerID)
	require.NoError(t, err)

	_, err = f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)

	var nve *StagesNotValidatedError
	require.ErrorAs(t, err, &nve)
	assert.Equal(t, []string{"Stage 2", "Stage 3"}, nve.StageNames)
	assert.Zero(t, f.generator.calls, "generation must not start with unvalidated stages")
}

func TestGenerateProjectCode_UnifiesGlobalLabels(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	stages := f.stages(t)

	f.generator.results[1] = stageResult(stages[0], []models.Label{
		{Name: "Start_Button", DataType: "Bool", Class: "VAR_GLOBAL", Device: "X0"},
	})
	f.generator.results[2] = stageResult(stages[1], []models.Label{
		{Name: "Start_Button", DataType: "Bool", Class: "VAR_GLOBAL", Device: "X0"},
		{Name: "Sensor1", DataType: "Bool", Class: "VAR_GLOBAL", Device: "X1"},
	})

	f.validateAll(t)
	codes, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	require.Len(t, codes, 2)

	// Every code row carries the same deduplicated global set.
	for _, code := range codes {
		require.Len(t, code.GlobalLabels, 2)
		assert.Equal(t, "Start_Button", code.GlobalLabels[0].Name)
		assert.Equal(t, "X0", code.GlobalLabels[0].Device)
		assert.Equal(t, "Sensor1", code.GlobalLabels[1].Name)
	}

	persisted, err := f.store.Codes.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)
	for _, code := range persisted {
		assert.Len(t, code.GlobalLabels, 2)
	}
}

func TestGenerateProjectCode_AllOrNothing(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()
	f.validateAll(t)

	// Seed prior code so a partial run would be observable as a change.
	stages := f.stages(t)
	prior, err := f.store.Codes.Create(ctx, &models.GeneratedCode{
		ProjectID:   f.project.ID,
		StageID:     stages[0].ID,
		ProgramBody: "OLD BODY",
		ProgramName: "STAGE_1",
	})
	require.NoError(t, err)

	f.generator.failOnStage = 3
	_, err = f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Stage 3", ge.StageName)
	assert.Equal(t, 3, f.generator.calls)

	// Nothing was persisted: the prior row is untouched and no stage gained
	// a generate_code ledger entry.
	codes, err := f.store.Codes.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, prior.ID, codes[0].ID)
	assert.Equal(t, "OLD BODY", codes[0].ProgramBody)

	for _, stage := range f.stages(t) {
		entries, err := f.store.Versions.ListByStage(ctx, stage.ID)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, models.ActionGenerateCode, e.Metadata["action"])
		}
		// Version reflects validation only.
		assert.Equal(t, "1.1.0", stage.VersionNumber)
	}
}

func TestGenerateProjectCode_ReplacesPriorCodeAndAppendsLedger(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.validateAll(t)

	first, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	second, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	// One current row per stage.
	codes, err := f.store.Codes.ListByProject(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Len(t, codes, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	// validate + two generate_code entries per stage; 1.1.0 → 1.2.0 → 1.3.0.
	stage := f.stages(t)[0]
	assert.Equal(t, "1.3.0", stage.VersionNumber)
	entries, err := f.store.Versions.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, models.ActionGenerateCode, entries[0].Metadata["action"])
	assert.NotEmpty(t, entries[1].Diff, "first generation diffs against the empty body")
}

func TestUpdateCode(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	f.generator.results[1] = stageResult(f.stages(t)[0], []models.Label{
		{Name: "Start_Button", DataType: "Bool", Class: "VAR_GLOBAL", Device: "X0"},
	})
	f.validateAll(t)

	_, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	stage := f.stages(t)[0]
	updated, err := f.svc.Codes.UpdateCode(ctx, stage.ID, testOwnerID, CodeUpdate{ProgramBody: "Run_1 := FALSE;"})
	require.NoError(t, err)
	assert.Equal(t, "Run_1 := FALSE;", updated.ProgramBody)
	assert.Equal(t, "Run_1 := FALSE;", updated.ProgramBlocks[0].Code)
	assert.Len(t, updated.GlobalLabels, 1, "omitted labels stay untouched")

	// edit_code bumps the patch from 1.2.0.
	stage = f.stages(t)[0]
	assert.Equal(t, "1.2.1", stage.VersionNumber)
	assert.Equal(t, models.ActionEditCode, stage.LastAction)

	_, err = f.svc.Codes.UpdateCode(ctx, stage.ID, testOwnerID, CodeUpdate{ProgramBody: "   "})
	assert.True(t, IsValidationError(err))
}

func TestUpdateCode_ReplacesLabels(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	f.validateAll(t)

	_, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	stage := f.stages(t)[0]
	globals := []models.Label{{Name: "E_Stop", DataType: "Bit", Class: "VAR_GLOBAL", Device: "X5"}}
	locals := []models.Label{}
	updated, err := f.svc.Codes.UpdateCode(ctx, stage.ID, testOwnerID, CodeUpdate{
		ProgramBody:  "Run_1 := NOT E_Stop;",
		GlobalLabels: &globals,
		LocalLabels:  &locals,
	})
	require.NoError(t, err)
	assert.Equal(t, globals, updated.GlobalLabels)
	assert.Empty(t, updated.LocalLabels, "explicit empty list clears the table")

	stored, err := f.store.Codes.GetByStage(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, globals, stored.GlobalLabels)
}

func TestGetByStage_NoCode(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.svc.Codes.GetByStage(context.Background(), f.stages(t)[0].ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNoCodeForStage)
}

func TestCodeOwnership(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	_, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID+1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Codes.ListByProject(ctx, f.project.ID+99, testOwnerID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExports(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	stages := f.stages(t)

	f.generator.results[1] = stageResult(stages[0], []models.Label{
		{Name: "Start_Button", DataType: "Bool", Class: "VAR_GLOBAL", Device: "X0"},
	})
	f.validateAll(t)

	_, err := f.svc.Codes.ExportGlobalLabels(ctx, f.project.ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNoCodeForStage)

	_, err = f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	global, err := f.svc.Codes.ExportGlobalLabels(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, global[:2])

	local, err := f.svc.Codes.ExportStageLocalLabels(ctx, stages[0].ID, testOwnerID)
	require.NoError(t, err)
	assert.NotEmpty(t, local)

	all, err := f.svc.Codes.ExportAllLocalLabels(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}
