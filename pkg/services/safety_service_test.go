package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestUploadManual_ReplacesAndEmbeds(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	first, err := f.svc.Safety.UploadManual(ctx, f.project.ID, testOwnerID, "rules_v1.pdf", "/tmp/rules_v1.pdf")
	require.NoError(t, err)
	assert.True(t, first.IsEmbedded)

	second, err := f.svc.Safety.UploadManual(ctx, f.project.ID, testOwnerID, "rules_v2.pdf", "/tmp/rules_v2.pdf")
	require.NoError(t, err)

	current, err := f.svc.Safety.GetManual(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "rules_v2.pdf", current.Filename)
}

func TestCheckStage_RequiresCodeAndManual(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stage := f.stages(t)[0]

	_, err := f.svc.Safety.CheckStage(ctx, stage.ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNoCodeForStage)

	f.validateAll(t)
	_, err = f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)

	_, err = f.svc.Safety.CheckStage(ctx, stage.ID, testOwnerID)
	assert.ErrorIs(t, err, ErrNotFound, "no manual uploaded yet")
}

func TestCheckStage_RecordsLedgerEntry(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	stage := f.stages(t)[0]

	f.validateAll(t)
	_, err := f.svc.Codes.GenerateProjectCode(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	_, err = f.svc.Safety.UploadManual(ctx, f.project.ID, testOwnerID, "rules.pdf", "/tmp/rules.pdf")
	require.NoError(t, err)

	report, err := f.svc.Safety.CheckStage(ctx, stage.ID, testOwnerID)
	require.NoError(t, err)
	assert.True(t, report.Passed())

	// validate 1.1.0 → generate 1.2.0 → safety_check 1.2.1.
	updated := f.stages(t)[0]
	assert.Equal(t, "1.2.1", updated.VersionNumber)
	assert.Equal(t, models.ActionSafetyCheck, updated.LastAction)

	entries, err := f.store.Versions.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.ActionSafetyCheck, entries[0].Metadata["action"])
	assert.Equal(t, models.SafetyStatusSafe, entries[0].Metadata["safety_status"])
	assert.Equal(t, true, entries[0].Metadata["passed"])
}
