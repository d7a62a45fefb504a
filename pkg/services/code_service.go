package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/export"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/versioning"
)

// CodeService implements project-wide code generation, code edits, and the
// GX Works 3 label exports.
type CodeService struct {
	store     *repository.Store
	locks     *projectLocks
	access    *accessControl
	generator CodeGenerator
	ledger    *versioning.Ledger
}

// GenerateProjectCode generates Structured Text for every stage of the
// project in one all-or-nothing operation: every stage must be validated
// before anything runs, and a single stage failing generation aborts the
// whole run with no rows written. On success every code row carries the
// project-wide unified global label set.
func (s *CodeService) GenerateProjectCode(ctx context.Context, projectID, userID int) ([]*models.GeneratedCode, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}

	lock := s.locks.lock(projectID)
	defer lock.Unlock()

	stages, err := s.store.Stages.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	if len(stages) == 0 {
		return nil, NewValidationError("project", "project has no stages to generate code for")
	}

	var unvalidated []string
	for _, stage := range stages {
		if !stage.IsValidated {
			unvalidated = append(unvalidated, stage.StageName)
		}
	}
	if len(unvalidated) > 0 {
		return nil, &StagesNotValidatedError{StageNames: unvalidated}
	}

	// Generate everything before touching the store.
	results := make([]*codegen.Result, len(stages))
	for i, stage := range stages {
		result, err := s.generator.Generate(ctx, stage)
		if err != nil {
			return nil, &GenerationError{
				StageID:   stage.ID,
				StageName: stage.StageName,
				Reason:    "code generation failed",
				Err:       err,
			}
		}
		results[i] = result
	}

	labelSets := make([][]models.Label, len(results))
	for i, result := range results {
		labelSets[i] = result.Parsed.GlobalLabels
	}
	unified := codegen.MergeAll(labelSets...)

	codes := make([]*models.GeneratedCode, 0, len(stages))
	for i, stage := range stages {
		code, err := s.persistStageCode(ctx, stage, results[i], userID)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	if err := s.store.Codes.UpdateGlobalLabels(ctx, projectID, unified); err != nil {
		return nil, fmt.Errorf("failed to unify global labels: %w", err)
	}
	for _, code := range codes {
		code.GlobalLabels = unified
	}

	slog.Info("Project code generated",
		"project_id", projectID, "stages", len(stages), "global_labels", len(unified))
	return codes, nil
}

func (s *CodeService) persistStageCode(ctx context.Context, stage *models.Stage, result *codegen.Result, userID int) (*models.GeneratedCode, error) {
	var oldBody string
	if prior, err := s.store.Codes.GetByStage(ctx, stage.ID); err == nil {
		oldBody = prior.ProgramBody
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load prior code for stage %d: %w", stage.ID, err)
	}

	if err := s.store.Codes.DeleteByStage(ctx, stage.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to replace code for stage %d: %w", stage.ID, err)
	}

	parsed := result.Parsed
	code, err := s.store.Codes.Create(ctx, &models.GeneratedCode{
		ProjectID:      stage.ProjectID,
		StageID:        stage.ID,
		GlobalLabels:   parsed.GlobalLabels,
		LocalLabels:    parsed.LocalLabels,
		ProgramBody:    parsed.ProgramBody,
		ProgramBlocks:  parsed.ProgramBlocks,
		Functions:      parsed.Functions,
		FunctionBlocks: parsed.FunctionBlocks,
		ProgramName:    result.ProgramName,
		ExecutionType:  result.ExecutionType,
		Metadata: map[string]any{
			"stage_name":   stage.StageName,
			"stage_number": stage.StageNumber,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist code for stage %d: %w", stage.ID, err)
	}

	entry, err := s.ledger.Append(ctx, stage, versioning.Record{
		CodeID:  code.ID,
		UserID:  userID,
		Action:  models.ActionGenerateCode,
		OldText: oldBody,
		NewText: parsed.ProgramBody,
		Metadata: map[string]any{
			"program_name":   result.ProgramName,
			"execution_type": result.ExecutionType,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Stages.UpdateVersionMetadata(ctx, stage.ID, entry.VersionNumber, models.ActionGenerateCode, entry.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update stage version: %w", err)
	}
	return code, nil
}

// GetByStage returns the current code row for a stage.
func (s *CodeService) GetByStage(ctx context.Context, stageID, userID int) (*models.GeneratedCode, error) {
	if _, err := s.ownedStage(ctx, stageID, userID); err != nil {
		return nil, err
	}
	code, err := s.store.Codes.GetByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNoCodeForStage))
	}
	return code, nil
}

// ListByProject returns every code row of the project in stage order.
func (s *CodeService) ListByProject(ctx context.Context, projectID, userID int) ([]*models.GeneratedCode, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.store.Codes.ListByProject(ctx, projectID)
}

// CodeUpdate carries a manual edit to a stage's code row. A nil label slice
// leaves the stored labels unchanged; an empty non-nil slice clears them.
type CodeUpdate struct {
	ProgramBody  string
	GlobalLabels *[]models.Label
	LocalLabels  *[]models.Label
}

// UpdateCode replaces a stage's program body, and optionally its label
// tables, with a manual edit and records an edit_code ledger entry.
func (s *CodeService) UpdateCode(ctx context.Context, stageID, userID int, update CodeUpdate) (*models.GeneratedCode, error) {
	if strings.TrimSpace(update.ProgramBody) == "" {
		return nil, NewValidationError("program_body", "program body must not be empty")
	}

	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.lock(stage.ProjectID)
	defer lock.Unlock()

	code, err := s.store.Codes.GetByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNoCodeForStage))
	}

	oldBody := code.ProgramBody
	code.ProgramBody = update.ProgramBody
	if len(code.ProgramBlocks) > 0 {
		code.ProgramBlocks[0].Code = update.ProgramBody
	}
	if update.GlobalLabels != nil {
		code.GlobalLabels = *update.GlobalLabels
	}
	if update.LocalLabels != nil {
		code.LocalLabels = *update.LocalLabels
	}
	if err := s.store.Codes.Update(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to update code for stage %d: %w", stageID, err)
	}

	entry, err := s.ledger.Append(ctx, stage, versioning.Record{
		CodeID:  code.ID,
		UserID:  userID,
		Action:  models.ActionEditCode,
		OldText: oldBody,
		NewText: update.ProgramBody,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Stages.UpdateVersionMetadata(ctx, stageID, entry.VersionNumber, models.ActionEditCode, entry.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update stage version: %w", err)
	}
	return code, nil
}

// ExportGlobalLabels renders the project's unified global label table in the
// GX Works 3 import format.
func (s *CodeService) ExportGlobalLabels(ctx context.Context, projectID, userID int) ([]byte, error) {
	codes, err := s.ListByProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNoCodeForStage)
	}

	labelSets := make([][]models.Label, len(codes))
	for i, code := range codes {
		labelSets[i] = code.GlobalLabels
	}
	return export.GlobalLabelsGX(codegen.MergeAll(labelSets...)), nil
}

// ExportStageLocalLabels renders one stage's local label table.
func (s *CodeService) ExportStageLocalLabels(ctx context.Context, stageID, userID int) ([]byte, error) {
	code, err := s.GetByStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}
	return export.LocalLabelsGX(code.LocalLabels), nil
}

// ExportAllLocalLabels renders every stage's local labels into one combined
// table, in stage order.
func (s *CodeService) ExportAllLocalLabels(ctx context.Context, projectID, userID int) ([]byte, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}

	stages, err := s.store.Stages.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	var all []export.StageLabels
	for _, stage := range stages {
		code, err := s.store.Codes.GetByStage(ctx, stage.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load code for stage %d: %w", stage.ID, err)
		}
		all = append(all, export.StageLabels{
			StageNumber: stage.StageNumber,
			StageName:   stage.StageName,
			LocalLabels: code.LocalLabels,
		})
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNoCodeForStage)
	}
	return export.AllStagesLocalLabels(all), nil
}

func (s *CodeService) ownedStage(ctx context.Context, stageID, userID int) (*models.Stage, error) {
	stage, err := s.store.Stages.GetByID(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNotFound))
	}
	if _, err := s.access.project(ctx, stage.ProjectID, userID); err != nil {
		return nil, err
	}
	return stage, nil
}
