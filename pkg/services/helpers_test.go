package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
)

type stubPlanner struct {
	plan *models.Plan
	err  error
}

func (s *stubPlanner) CreatePlan(context.Context, string) (*models.Plan, error) {
	return s.plan, s.err
}

type stubChecker struct {
	report *models.ValidationReport
	err    error
}

func (s *stubChecker) ValidateStage(context.Context, *models.Stage) (*models.ValidationReport, error) {
	return s.report, s.err
}

// stubGenerator returns canned results keyed by stage number and can be told
// to fail on one stage.
type stubGenerator struct {
	failOnStage int
	calls       int
	results     map[int]*codegen.Result
}

func (s *stubGenerator) Generate(_ context.Context, stage *models.Stage) (*codegen.Result, error) {
	s.calls++
	if s.failOnStage != 0 && stage.StageNumber == s.failOnStage {
		return nil, fmt.Errorf("model returned no program block")
	}
	if r, ok := s.results[stage.StageNumber]; ok {
		return r, nil
	}
	return stageResult(stage, nil), nil
}

type stubInterrogator struct {
	report *models.SafetyReport
	err    error
}

func (s *stubInterrogator) Check(context.Context, int, *models.GeneratedCode) (*models.SafetyReport, error) {
	return s.report, s.err
}

type stubIngester struct {
	meta *retrieval.Metadata
	err  error
}

func (s *stubIngester) Process(context.Context, int, string) (*retrieval.Metadata, error) {
	if s.meta == nil && s.err == nil {
		return &retrieval.Metadata{TotalChunks: 1}, nil
	}
	return s.meta, s.err
}

// stageResult builds a generation result whose body names the stage so tests
// can tell outputs apart.
func stageResult(stage *models.Stage, globals []models.Label) *codegen.Result {
	body := fmt.Sprintf("IF Start_%d THEN Run_%d := TRUE; END_IF;", stage.StageNumber, stage.StageNumber)
	return &codegen.Result{
		Parsed: &models.ParsedProgram{
			GlobalLabels: globals,
			LocalLabels:  []models.Label{{Name: fmt.Sprintf("Run_%d", stage.StageNumber), DataType: "Bool", Class: "VAR"}},
			ProgramBody:  body,
			ProgramBlocks: []models.ProgramBlock{{
				Name:          fmt.Sprintf("STAGE_%d", stage.StageNumber),
				ExecutionType: models.ExecutionScan,
				Code:          body,
			}},
		},
		ProgramName:   fmt.Sprintf("STAGE_%d", stage.StageNumber),
		ExecutionType: codegen.ExecutionTypeFor(stage.StageType),
		Raw:           body,
	}
}

type fixture struct {
	svc       *Services
	store     *repository.Store
	generator *stubGenerator
	checker   *stubChecker
	project   *models.Project
}

const testOwnerID = 42

// newFixture builds a memory-backed service layer with one project and the
// given number of stages, all starting unvalidated at 1.0.0.
func newFixture(t *testing.T, stageCount int) *fixture {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	generator := &stubGenerator{results: map[int]*codegen.Result{}}
	checker := &stubChecker{report: &models.ValidationReport{Valid: true, Status: "PASS"}}

	svc := New(Deps{
		Store:        store,
		Planner:      &stubPlanner{},
		Checker:      checker,
		Generator:    generator,
		Interrogator: &stubInterrogator{report: &models.SafetyReport{OverallStatus: models.SafetyStatusSafe, Severity: "LOW"}},
		Manuals:      &stubIngester{},
		UploadsDir:   t.TempDir(),
	})

	project, err := svc.Projects.Create(ctx, testOwnerID, "Conveyor Line", "two conveyor stages")
	require.NoError(t, err)

	for i := 1; i <= stageCount; i++ {
		_, err := store.Stages.Create(ctx, &models.Stage{
			ProjectID:     project.ID,
			StageNumber:   i,
			StageName:     fmt.Sprintf("Stage %d", i),
			StageType:     models.StageTypeOperation,
			OriginalLogic: fmt.Sprintf("run step %d", i),
			VersionNumber: models.InitialVersion,
		})
		require.NoError(t, err)
	}

	return &fixture{svc: svc, store: store, generator: generator, checker: checker, project: project}
}

func (f *fixture) stages(t *testing.T) []*models.Stage {
	t.Helper()
	stages, err := f.store.Stages.ListByProject(context.Background(), f.project.ID)
	require.NoError(t, err)
	return stages
}

func (f *fixture) validateAll(t *testing.T) {
	t.Helper()
	for _, stage := range f.stages(t) {
		_, err := f.svc.Stages.Validate(context.Background(), stage.ID, testOwnerID)
		require.NoError(t, err)
	}
}
