package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
)

type staticRetriever struct {
	text string
	err  error
}

func (r *staticRetriever) RetrieveContext(context.Context, string, string, int) (string, error) {
	return r.text, r.err
}

type staticPrompts struct{}

func (staticPrompts) Load(string, string) (string, error) {
	return "You are a PLC stage planner.", nil
}

func scriptedLLM(response string) llm.Client {
	return llm.ChatFunc(func(context.Context, []llm.Message, llm.Options) (string, error) {
		return response, nil
	})
}

func conveyorLogic() string {
	base := "When the operator presses the start button the conveyor motor runs " +
		"until the photo sensor detects a package at the filling station. " +
		"If the emergency stop is pressed all motors stop immediately and the " +
		"alarm sounds. After filling completes the conveyor restarts and moves " +
		"the package to the discharge end where a pneumatic cylinder pushes it " +
		"onto the exit chute. The heater keeps the glue tank at temperature. "
	return strings.Repeat(base, 2)
}

func TestCheckInput(t *testing.T) {
	limits := DefaultLimits()

	check := CheckInput("   ", limits)
	assert.False(t, check.Valid)
	assert.Contains(t, check.Reason, "empty")

	check = CheckInput("start the motor", limits)
	assert.False(t, check.Valid)
	assert.Contains(t, check.Reason, "too brief")
	assert.Equal(t, 3, check.WordCount)

	check = CheckInput(strings.Repeat("word ", 5001), limits)
	assert.False(t, check.Valid)
	assert.Contains(t, check.Reason, "too long")

	check = CheckInput(conveyorLogic(), limits)
	assert.True(t, check.Valid)
	assert.GreaterOrEqual(t, check.WordCount, 50)
}

func TestAnalyze(t *testing.T) {
	analysis := Analyze(conveyorLogic())

	assert.True(t, analysis.HasStart)
	assert.True(t, analysis.HasStop)
	assert.True(t, analysis.HasEmergency)
	assert.True(t, analysis.HasConditions)
	assert.True(t, analysis.HasSequence)
	assert.Contains(t, analysis.Actuators, "conveyor")
	assert.Contains(t, analysis.Actuators, "motor")
	assert.Contains(t, analysis.Sensors, "detects")
	assert.Positive(t, analysis.ComplexityScore)
	assert.LessOrEqual(t, analysis.ComplexityScore, 15)
	assert.Positive(t, analysis.WordCount)
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "motors and more motors, a valve, the conveyor and the conveyor again"
	first := Analyze(text)
	second := Analyze(text)
	assert.Equal(t, first, second)
	// Dedup plus stable ordering.
	assert.Equal(t, []string{"conveyor", "motors", "valve"}, first.Actuators)
}

func TestValidateDependencies(t *testing.T) {
	stages := []models.StageDraft{
		{StageNumber: 0, StageName: "Idle", StageType: models.StageTypeIdle},
		{StageNumber: 1, StageName: "Safety Check", StageType: models.StageTypeSafety},
		{StageNumber: 2, StageName: "Run", StageType: models.StageTypeOperation},
	}

	t.Run("valid chain", func(t *testing.T) {
		report := ValidateDependencies(stages, []models.StageDependency{
			{FromStage: 0, ToStage: 1}, {FromStage: 1, ToStage: 2},
		})
		assert.True(t, report.Valid)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("missing endpoint is an error", func(t *testing.T) {
		report := ValidateDependencies(stages, []models.StageDependency{
			{FromStage: 0, ToStage: 9},
		})
		assert.False(t, report.Valid)
		assert.Contains(t, report.Errors[0], "non-existent stage: 9")
	})

	t.Run("backward edge is a warning", func(t *testing.T) {
		report := ValidateDependencies(stages, []models.StageDependency{
			{FromStage: 0, ToStage: 1}, {FromStage: 1, ToStage: 2}, {FromStage: 2, ToStage: 0},
		})
		assert.True(t, report.Valid)
		require.Len(t, report.Warnings, 1)
		assert.Contains(t, report.Warnings[0], "Backwards dependency")
	})

	t.Run("unreachable stage is a warning", func(t *testing.T) {
		report := ValidateDependencies(stages, []models.StageDependency{
			{FromStage: 0, ToStage: 1},
		})
		assert.True(t, report.Valid)
		require.Len(t, report.Warnings, 1)
		assert.Contains(t, report.Warnings[0], "Stage 2 may be unreachable")
	})
}

func TestBuildTransitionGraph(t *testing.T) {
	stages := []models.StageDraft{
		{StageNumber: 0, StageName: "Idle", StageType: models.StageTypeIdle},
		{StageNumber: 1, StageName: "Safety Check", StageType: models.StageTypeSafety},
	}
	deps := []models.StageDependency{{FromStage: 0, ToStage: 1, Condition: "ready"}}

	graph := BuildTransitionGraph(stages, deps)
	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, models.GraphNode{ID: 0, Label: "Idle", Type: "idle"}, graph.Nodes[0])
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, models.GraphEdge{From: 0, To: 1, Label: "ready"}, graph.Edges[0])
}

const fourStagePlan = `Here is the breakdown you asked for:
{
  "stages": [
    {"stage_number": 0, "stage_name": "Idle Stage", "stage_type": "idle", "description": "Waiting", "original_logic": "system waits"},
    {"stage_number": 1, "stage_name": "Safety Check Stage", "stage_type": "safety", "description": "Interlocks", "original_logic": "check interlocks"},
    {"stage_number": 2, "stage_name": "Filling", "stage_type": "operation", "description": "Fill", "original_logic": "fill the package"},
    {"stage_number": 3, "stage_name": "Discharge", "stage_type": "operation", "description": "Discharge", "original_logic": "push onto chute"}
  ],
  "dependencies": [
    {"from_stage": 0, "to_stage": 1, "condition": "start pressed"},
    {"from_stage": 1, "to_stage": 2, "condition": "safety ok"},
    {"from_stage": 2, "to_stage": 3, "condition": "fill done"}
  ]
}
Let me know if you need changes.`

func TestCreatePlan_FullPipeline(t *testing.T) {
	p := New(scriptedLLM(fourStagePlan), &staticRetriever{text: "manual context"}, staticPrompts{}, DefaultLimits())

	plan, err := p.CreatePlan(context.Background(), conveyorLogic())
	require.NoError(t, err)

	// Mandatory stages and contiguous numbering.
	require.Len(t, plan.Stages, 4)
	assert.Equal(t, models.StageTypeIdle, plan.Stages[0].StageType)
	assert.Equal(t, models.StageTypeSafety, plan.Stages[1].StageType)
	for i, s := range plan.Stages {
		assert.Equal(t, i, s.StageNumber)
	}

	assert.Equal(t, 4, plan.TotalStages)
	assert.True(t, plan.DependencyValidation.Valid)
	assert.Empty(t, plan.DependencyValidation.Warnings)
	assert.Len(t, plan.TransitionGraph.Nodes, 4)
	assert.Len(t, plan.TransitionGraph.Edges, 3)
}

func TestCreatePlan_RejectsInvalidInput(t *testing.T) {
	p := New(scriptedLLM(fourStagePlan), &staticRetriever{}, staticPrompts{}, DefaultLimits())

	_, err := p.CreatePlan(context.Background(), "too short")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Reason, "too brief")
}

func TestSegregate_FallbackOnGarbage(t *testing.T) {
	p := New(scriptedLLM("I could not produce JSON, sorry."), &staticRetriever{}, staticPrompts{}, DefaultLimits())

	plan, err := p.CreatePlan(context.Background(), conveyorLogic())
	require.NoError(t, err)

	require.Len(t, plan.Stages, 2)
	assert.Equal(t, models.StageTypeIdle, plan.Stages[0].StageType)
	assert.Equal(t, models.StageTypeSafety, plan.Stages[1].StageType)
	require.Len(t, plan.Dependencies, 1)
	assert.Equal(t, "System ready and no faults", plan.Dependencies[0].Condition)
}

func TestSegregate_ToleratesMissingManualContext(t *testing.T) {
	retriever := &staticRetriever{err: assert.AnError}
	p := New(scriptedLLM(fourStagePlan), retriever, staticPrompts{}, DefaultLimits())

	plan, err := p.CreatePlan(context.Background(), conveyorLogic())
	require.NoError(t, err)
	assert.Len(t, plan.Stages, 4)
}
