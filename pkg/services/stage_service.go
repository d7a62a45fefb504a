package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/versioning"
)

// StageService implements per-stage operations: logic edits, validation,
// finalization, and version history reads.
type StageService struct {
	store   *repository.Store
	locks   *projectLocks
	access  *accessControl
	checker StageChecker
	ledger  *versioning.Ledger
}

// List returns the project's stages in stage order.
func (s *StageService) List(ctx context.Context, projectID, userID int) ([]*models.Stage, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.store.Stages.ListByProject(ctx, projectID)
}

// Get returns one stage after checking ownership of its project.
func (s *StageService) Get(ctx context.Context, stageID, userID int) (*models.Stage, error) {
	return s.ownedStage(ctx, stageID, userID)
}

// UpdateLogic replaces the stage's edited logic, resets its validation state,
// and records an edit_logic ledger entry carrying the text diff.
func (s *StageService) UpdateLogic(ctx context.Context, stageID, userID int, editedLogic string) (*models.Stage, error) {
	editedLogic = strings.TrimSpace(editedLogic)
	if editedLogic == "" {
		return nil, NewValidationError("edited_logic", "edited logic must not be empty")
	}

	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.lock(stage.ProjectID)
	defer lock.Unlock()

	oldLogic := stage.EffectiveLogic()
	if err := s.store.Stages.UpdateLogic(ctx, stageID, editedLogic); err != nil {
		return nil, fmt.Errorf("failed to update stage logic: %w", notFoundAs(err, ErrNotFound))
	}

	entry, err := s.ledger.Append(ctx, stage, versioning.Record{
		UserID:  userID,
		Action:  models.ActionEditLogic,
		OldText: oldLogic,
		NewText: editedLogic,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Stages.UpdateVersionMetadata(ctx, stageID, entry.VersionNumber, models.ActionEditLogic, entry.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update stage version: %w", err)
	}

	return s.store.Stages.GetByID(ctx, stageID)
}

// Validate runs the stage checker over the effective logic. A passing report
// marks the stage validated and records a validate ledger entry; a failing
// report is returned without touching the stage.
func (s *StageService) Validate(ctx context.Context, stageID, userID int) (*models.ValidationReport, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}

	report, err := s.checker.ValidateStage(ctx, stage)
	if err != nil {
		return nil, err
	}

	if !report.Valid {
		slog.Info("Stage validation failed",
			"stage_id", stageID, "status", report.Status, "issues", len(report.Issues))
		return report, nil
	}

	lock := s.locks.lock(stage.ProjectID)
	defer lock.Unlock()

	if err := s.store.Stages.MarkValidated(ctx, stageID); err != nil {
		return nil, fmt.Errorf("failed to mark stage validated: %w", notFoundAs(err, ErrNotFound))
	}

	entry, err := s.ledger.Append(ctx, stage, versioning.Record{
		UserID: userID,
		Action: models.ActionValidate,
		Metadata: map[string]any{
			"validation_status": report.Status,
			"passed":            report.Valid,
			"critical_issues":   criticalCount(report),
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Stages.UpdateVersionMetadata(ctx, stageID, entry.VersionNumber, models.ActionValidate, entry.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update stage version: %w", err)
	}

	return report, nil
}

// Finalize locks a validated stage against further edits.
func (s *StageService) Finalize(ctx context.Context, stageID, userID int) (*models.Stage, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}
	if !stage.IsValidated {
		return nil, fmt.Errorf("stage %d: %w", stageID, ErrNotValidated)
	}

	lock := s.locks.lock(stage.ProjectID)
	defer lock.Unlock()

	if err := s.store.Stages.MarkFinalized(ctx, stageID); err != nil {
		return nil, fmt.Errorf("failed to finalize stage: %w", notFoundAs(err, ErrNotFound))
	}
	return s.store.Stages.GetByID(ctx, stageID)
}

// VersionHistory returns the stage's ledger entries, newest first.
func (s *StageService) VersionHistory(ctx context.Context, stageID, userID int) ([]*models.VersionEntry, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}
	return s.ledger.History(ctx, stage.ID)
}

// VersionByNumber returns the ledger entry recorded for one version.
func (s *StageService) VersionByNumber(ctx context.Context, stageID, userID int, versionNumber string) (*models.VersionEntry, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}
	entry, err := s.ledger.ByVersion(ctx, stage.ID, versionNumber)
	if err != nil {
		return nil, fmt.Errorf("version %s: %w", versionNumber, notFoundAs(err, ErrNotFound))
	}
	return entry, nil
}

// VersionSummary returns the condensed version view for a stage.
func (s *StageService) VersionSummary(ctx context.Context, stageID, userID int) (*models.VersionSummary, error) {
	stage, err := s.ownedStage(ctx, stageID, userID)
	if err != nil {
		return nil, err
	}
	return s.ledger.Summary(ctx, stage)
}

func (s *StageService) ownedStage(ctx context.Context, stageID, userID int) (*models.Stage, error) {
	stage, err := s.store.Stages.GetByID(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", stageID, notFoundAs(err, ErrNotFound))
	}
	if _, err := s.access.project(ctx, stage.ProjectID, userID); err != nil {
		return nil, err
	}
	return stage, nil
}

func criticalCount(report *models.ValidationReport) int {
	n := 0
	for _, issue := range report.CategorizedIssues {
		if issue.Severity == models.SeverityCritical {
			n++
		}
	}
	return n
}
