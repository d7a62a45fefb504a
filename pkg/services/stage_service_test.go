package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestUpdateLogic_ResetsValidationAndBumpsPatch(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stage := f.stages(t)[0]

	_, err := f.svc.Stages.Validate(ctx, stage.ID, testOwnerID)
	require.NoError(t, err)
	require.True(t, f.stages(t)[0].IsValidated)

	updated, err := f.svc.Stages.UpdateLogic(ctx, stage.ID, testOwnerID, "run step 1 then stop on fault")
	require.NoError(t, err)

	assert.Equal(t, "run step 1 then stop on fault", updated.EditedLogic)
	assert.False(t, updated.IsValidated, "editing logic invalidates the stage")
	assert.Equal(t, "1.1.1", updated.VersionNumber)
	assert.Equal(t, models.ActionEditLogic, updated.LastAction)

	entries, err := f.store.Versions.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Diff, "+run step 1 then stop on fault")
}

func TestValidate_FailingReportLeavesStageUntouched(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	f.checker.report = &models.ValidationReport{
		Valid:  false,
		Status: "FAIL",
		CategorizedIssues: []models.CategorizedIssue{
			{Severity: models.SeverityCritical, Title: "No emergency stop"},
		},
	}

	report, err := f.svc.Stages.Validate(ctx, f.stages(t)[0].ID, testOwnerID)
	require.NoError(t, err)
	assert.False(t, report.Valid)

	stage := f.stages(t)[0]
	assert.False(t, stage.IsValidated)
	assert.Equal(t, models.InitialVersion, stage.VersionNumber)

	entries, err := f.store.Versions.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed validation appends no ledger entry")
}

func TestFinalize_RequiresValidation(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stage := f.stages(t)[0]

	_, err := f.svc.Stages.Finalize(ctx, stage.ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNotValidated)

	_, err = f.svc.Stages.Validate(ctx, stage.ID, testOwnerID)
	require.NoError(t, err)

	finalized, err := f.svc.Stages.Finalize(ctx, stage.ID, testOwnerID)
	require.NoError(t, err)
	assert.True(t, finalized.IsFinalized)
}

// The full lifecycle appends one ledger entry per action with the versions
// the bump rules dictate.
func TestVersionLifecycle(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stageID := f.stages(t)[0].ID

	_, err := f.svc.Stages.UpdateLogic(ctx, stageID, testOwnerID, "edited once")
	require.NoError(t, err)
	_, err = f.svc.Stages.Validate(ctx, stageID, testOwnerID)
	require.NoError(t, err)
	_, err = f.svc.Stages.UpdateLogic(ctx, stageID, testOwnerID, "edited twice")
	require.NoError(t, err)
	_, err = f.svc.Stages.Validate(ctx, stageID, testOwnerID)
	require.NoError(t, err)
	_, err = f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	history, err := f.svc.Stages.VersionHistory(ctx, stageID, testOwnerID)
	require.NoError(t, err)
	require.Len(t, history, 5)

	// Newest first: 1.0.1 → 1.1.0 → 1.1.1 → 1.2.0 → 1.3.0.
	wantVersions := []string{"1.3.0", "1.2.0", "1.1.1", "1.1.0", "1.0.1"}
	wantActions := []string{
		models.ActionGenerateCode, models.ActionValidate, models.ActionEditLogic,
		models.ActionValidate, models.ActionEditLogic,
	}
	for i, entry := range history {
		assert.Equal(t, wantVersions[i], entry.VersionNumber)
		assert.Equal(t, wantActions[i], entry.Metadata["action"])
	}

	summary, err := f.svc.Stages.VersionSummary(ctx, stageID, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", summary.CurrentVersion)
	assert.Equal(t, 5, summary.TotalVersions)

	byVersion, err := f.svc.Stages.VersionByNumber(ctx, stageID, testOwnerID, "1.1.1")
	require.NoError(t, err)
	assert.Equal(t, models.ActionEditLogic, byVersion.Metadata["action"])

	_, err = f.svc.Stages.VersionByNumber(ctx, stageID, testOwnerID, "7.7.7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStageOwnership(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stage := f.stages(t)[0]

	_, err := f.svc.Stages.Get(ctx, stage.ID, testOwnerID+1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Stages.Get(ctx, stage.ID+99, testOwnerID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Stages.UpdateLogic(ctx, stage.ID, testOwnerID, "  ")
	assert.True(t, IsValidationError(err))
}
