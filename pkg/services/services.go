package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
	"github.com/nexus-controls/plcforge/pkg/versioning"
)

// StagePlanner turns raw control logic into a staged plan.
type StagePlanner interface {
	CreatePlan(ctx context.Context, controlLogic string) (*models.Plan, error)
}

// StageChecker validates one stage's effective logic.
type StageChecker interface {
	ValidateStage(ctx context.Context, stage *models.Stage) (*models.ValidationReport, error)
}

// CodeGenerator produces Structured Text artifacts for one stage.
type CodeGenerator interface {
	Generate(ctx context.Context, stage *models.Stage) (*codegen.Result, error)
}

// CodeInterrogator checks generated code against the project's safety rules.
type CodeInterrogator interface {
	Check(ctx context.Context, projectID int, code *models.GeneratedCode) (*models.SafetyReport, error)
}

// ManualIngester extracts a safety manual and builds its retrieval corpus.
type ManualIngester interface {
	Process(ctx context.Context, projectID int, path string) (*retrieval.Metadata, error)
}

// Services bundles every engine operation behind one injection point.
type Services struct {
	Projects *ProjectService
	Planner  *PlannerService
	Stages   *StageService
	Codes    *CodeService
	Safety   *SafetyService
	Files    *FileService
}

// Deps are the collaborators the engine is assembled from.
type Deps struct {
	Store        *repository.Store
	Planner      StagePlanner
	Checker      StageChecker
	Generator    CodeGenerator
	Interrogator CodeInterrogator
	Manuals      ManualIngester
	UploadsDir   string
}

// New wires the full service layer. Write operations on the same project
// are serialized through a shared per-project lock set.
func New(deps Deps) *Services {
	locks := newProjectLocks()
	ledger := versioning.NewLedger(deps.Store.Versions)
	access := &accessControl{projects: deps.Store.Projects}

	return &Services{
		Projects: &ProjectService{store: deps.Store, locks: locks, access: access},
		Planner: &PlannerService{
			store: deps.Store, locks: locks, access: access, planner: deps.Planner,
		},
		Stages: &StageService{
			store: deps.Store, locks: locks, access: access,
			checker: deps.Checker, ledger: ledger,
		},
		Codes: &CodeService{
			store: deps.Store, locks: locks, access: access,
			generator: deps.Generator, ledger: ledger,
		},
		Safety: &SafetyService{
			store: deps.Store, locks: locks, access: access,
			interrogator: deps.Interrogator, ingester: deps.Manuals, ledger: ledger,
		},
		Files: &FileService{
			store: deps.Store, access: access, uploadsDir: deps.UploadsDir,
		},
	}
}

// accessControl loads a project and enforces ownership for every operation
// that names a project or one of its rows.
type accessControl struct {
	projects repository.Projects
}

// project returns the project iff it exists and is owned by userID.
func (a *accessControl) project(ctx context.Context, projectID, userID int) (*models.Project, error) {
	project, err := a.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load project %d: %w", projectID, err)
	}
	if project.OwnerID != userID {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrForbidden)
	}
	return project, nil
}

// notFoundAs maps the repository's not-found sentinel onto the service one.
func notFoundAs(err error, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
