package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/versioning"
)

// SafetyService handles safety manual uploads and code interrogation.
type SafetyService struct {
	store        *repository.Store
	locks        *projectLocks
	access       *accessControl
	interrogator CodeInterrogator
	ingester     ManualIngester
	ledger       *versioning.Ledger
}

// UploadManual registers a safety manual for the project and builds its
// retrieval corpus. A prior manual for the project is replaced.
func (s *SafetyService) UploadManual(ctx context.Context, projectID, userID int, filename, path string) (*models.SafetyManual, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}

	lock := s.locks.lock(projectID)
	defer lock.Unlock()

	if err := s.store.Manuals.DeleteByProject(ctx, projectID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to replace safety manual: %w", err)
	}

	manual, err := s.store.Manuals.Create(ctx, &models.SafetyManual{
		ProjectID: projectID,
		Filename:  filename,
		FilePath:  path,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record safety manual: %w", err)
	}

	meta, err := s.ingester.Process(ctx, projectID, path)
	if err != nil {
		return nil, err
	}
	if err := s.store.Manuals.MarkEmbedded(ctx, manual.ID); err != nil {
		return nil, fmt.Errorf("failed to mark manual embedded: %w", err)
	}
	manual.IsEmbedded = true

	slog.Info("Safety manual uploaded",
		"project_id", projectID, "file", filename, "chunks", meta.TotalChunks)
	return manual, nil
}

// GetManual returns the project's safety manual record.
func (s *SafetyService) GetManual(ctx context.Context, projectID, userID int) (*models.SafetyManual, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	manual, err := s.store.Manuals.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("safety manual for project %d: %w", projectID, notFoundAs(err, ErrNotFound))
	}
	return manual, nil
}

// CheckStage interrogates a stage's generated code against the project's
// safety manual and records a safety_check ledger entry.
func (s *SafetyService) CheckStage(ctx context.Context, stageID, userID int) (*models.SafetyReport, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}

	code, err := s.store.Codes.GetByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNoCodeForStage))
	}
	if _, err := s.store.Manuals.GetByProject(ctx, stage.ProjectID); err != nil {
		return nil, fmt.Errorf("safety manual for project %d: %w", stage.ProjectID, notFoundAs(err, ErrNotFound))
	}

	report, err := s.interrogator.Check(ctx, stage.ProjectID, code)
	if err != nil {
		return nil, err
	}

	lock := s.locks.lock(stage.ProjectID)
	defer lock.Unlock()

	entry, err := s.ledger.Append(ctx, stage, versioning.Record{
		CodeID: code.ID,
		UserID: userID,
		Action: models.ActionSafetyCheck,
		Metadata: map[string]any{
			"safety_status": report.OverallStatus,
			"severity":      report.Severity,
			"passed":        report.Passed(),
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Stages.UpdateVersionMetadata(ctx, stageID, entry.VersionNumber, models.ActionSafetyCheck, entry.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update stage version: %w", err)
	}

	slog.Info("Safety check recorded",
		"stage_id", stageID, "status", report.OverallStatus, "severity", report.Severity)
	return report, nil
}

func (s *SafetyService) ownedStage(ctx context.Context, stageID, userID int) (*models.Stage, error) {
	stage, err := s.store.Stages.GetByID(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNotFound))
	}
	if _, err := s.access.project(ctx, stage.ProjectID, userID); err != nil {
		return nil, err
	}
	return stage, nil
}
