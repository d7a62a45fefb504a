package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

// PlannerService runs logic ingestion: plan creation and stage persistence.
type PlannerService struct {
	store   *repository.Store
	locks   *projectLocks
	access  *accessControl
	planner StagePlanner
}

// IngestResult pairs the planner's analysis with the persisted stages.
type IngestResult struct {
	Plan   *models.Plan    `json:"plan"`
	Stages []*models.Stage `json:"stages"`
}

// IngestLogic plans the control logic and replaces the project's stages with
// the planned set. Every new stage starts at the initial version with no
// validation state. Planning happens before any row is touched, so a planner
// failure leaves the previous stages intact.
func (s *PlannerService) IngestLogic(ctx context.Context, projectID, userID int, controlLogic string) (*IngestResult, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}

	plan, err := s.planner.CreatePlan(ctx, controlLogic)
	if err != nil {
		return nil, err
	}

	lock := s.locks.lock(projectID)
	defer lock.Unlock()

	if err := s.store.Stages.DeleteProjectStages(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to clear previous stages: %w", err)
	}

	stages := make([]*models.Stage, 0, len(plan.Stages))
	for _, draft := range plan.Stages {
		stage, err := s.store.Stages.Create(ctx, &models.Stage{
			ProjectID:     projectID,
			StageNumber:   draft.StageNumber,
			StageName:     draft.StageName,
			StageType:     draft.StageType,
			Description:   draft.Description,
			OriginalLogic: draft.OriginalLogic,
			Dependencies:  outgoingDependencies(plan.Dependencies, draft.StageNumber),
			VersionNumber: models.InitialVersion,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist stage %d: %w", draft.StageNumber, err)
		}
		stages = append(stages, stage)
	}

	slog.Info("Logic ingested",
		"project_id", projectID, "stages", len(stages),
		"dependencies", len(plan.Dependencies))
	return &IngestResult{Plan: plan, Stages: stages}, nil
}

// Preview plans the control logic without persisting anything.
func (s *PlannerService) Preview(ctx context.Context, projectID, userID int, controlLogic string) (*models.Plan, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.planner.CreatePlan(ctx, controlLogic)
}

// outgoingDependencies selects the transitions leaving stageNumber.
func outgoingDependencies(deps []models.StageDependency, stageNumber int) []models.StageDependency {
	var out []models.StageDependency
	for _, d := range deps {
		if d.FromStage == stageNumber {
			out = append(out, d)
		}
	}
	return out
}
