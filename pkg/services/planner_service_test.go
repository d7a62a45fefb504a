package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/planner"
)

func conveyorPlan() *models.Plan {
	return &models.Plan{
		Stages: []models.StageDraft{
			{StageNumber: 1, StageName: "Safety Check", StageType: models.StageTypeSafety, OriginalLogic: "check emergency stop"},
			{StageNumber: 2, StageName: "Run Conveyor", StageType: models.StageTypeOperation, OriginalLogic: "start conveyor on button"},
		},
		Dependencies: []models.StageDependency{
			{FromStage: 1, ToStage: 2, Condition: "safety ok"},
		},
		TotalStages: 2,
	}
}

func TestIngestLogic_PersistsPlannedStages(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.svc.Planner.planner = &stubPlanner{plan: conveyorPlan()}

	result, err := f.svc.Planner.IngestLogic(ctx, f.project.ID, testOwnerID, "some logic")
	require.NoError(t, err)
	require.Len(t, result.Stages, 2)

	first := result.Stages[0]
	assert.Equal(t, models.InitialVersion, first.VersionNumber)
	assert.False(t, first.IsValidated)
	require.Len(t, first.Dependencies, 1)
	assert.Equal(t, 2, first.Dependencies[0].ToStage)
	assert.Empty(t, result.Stages[1].Dependencies)
}

func TestIngestLogic_ReplacesPreviousStages(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	f.svc.Planner.planner = &stubPlanner{plan: conveyorPlan()}

	_, err := f.svc.Planner.IngestLogic(ctx, f.project.ID, testOwnerID, "new logic")
	require.NoError(t, err)

	stages := f.stages(t)
	require.Len(t, stages, 2)
	assert.Equal(t, "Safety Check", stages[0].StageName)
}

func TestIngestLogic_PlannerFailureKeepsStages(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.svc.Planner.planner = &stubPlanner{err: &planner.InputError{Reason: "too short", WordCount: 2}}

	_, err := f.svc.Planner.IngestLogic(ctx, f.project.ID, testOwnerID, "hi")

	var ie *planner.InputError
	require.ErrorAs(t, err, &ie)
	assert.Len(t, f.stages(t), 2, "rejected input must not clear existing stages")
}

func TestPreview_DoesNotPersist(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.svc.Planner.planner = &stubPlanner{plan: conveyorPlan()}

	plan, err := f.svc.Planner.Preview(ctx, f.project.ID, testOwnerID, "some logic")
	require.NoError(t, err)
	assert.Equal(t, 2, plan.TotalStages)
	assert.Empty(t, f.stages(t))
}
