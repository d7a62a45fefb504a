package versioning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

// Record describes one engine mutation to be written to the ledger.
type Record struct {
	CodeID   int
	UserID   int
	Action   string
	OldText  string
	NewText  string
	Metadata map[string]any
}

// Ledger appends version entries and serves history reads. Entries are
// immutable once written; the stage row carries the current version number,
// which the caller persists from the returned entry.
type Ledger struct {
	versions repository.Versions
}

// NewLedger creates a ledger over the versions repository.
func NewLedger(versions repository.Versions) *Ledger {
	return &Ledger{versions: versions}
}

// Append computes the next version for the stage, builds the entry with the
// action's diff, and appends it. The caller updates the stage's version
// metadata with the returned entry's VersionNumber and Timestamp in the same
// critical section as the mutation the entry describes.
func (l *Ledger) Append(ctx context.Context, stage *models.Stage, rec Record) (*models.VersionEntry, error) {
	previous := stage.VersionNumber
	if previous == "" {
		previous = models.InitialVersion
	}
	next := Increment(previous, rec.Action)

	history, err := l.versions.ListByStage(ctx, stage.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage history: %w", err)
	}

	// Only logic edits and code generation carry a text diff.
	var diff string
	switch rec.Action {
	case models.ActionEditLogic, models.ActionGenerateCode:
		diff = UnifiedDiff(rec.OldText, rec.NewText)
	}

	metadata := map[string]any{
		"action":           rec.Action,
		"previous_version": previous,
		"new_version":      next,
		"validation_count": len(history),
	}
	for k, v := range rec.Metadata {
		metadata[k] = v
	}

	entry := &models.VersionEntry{
		CodeID:        rec.CodeID,
		StageID:       stage.ID,
		UserID:        rec.UserID,
		Level:         models.VersionLevelEvent,
		VersionNumber: next,
		OldCode:       rec.OldText,
		NewCode:       rec.NewText,
		Diff:          diff,
		Timestamp:     time.Now().UTC(),
		Metadata:      metadata,
	}

	appended, err := l.versions.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to append version entry: %w", err)
	}

	slog.Info("Version entry appended",
		"stage_id", stage.ID, "action", rec.Action, "version", next)
	return appended, nil
}

// History returns the stage's ledger entries, newest first.
func (l *Ledger) History(ctx context.Context, stageID int) ([]*models.VersionEntry, error) {
	return l.versions.ListByStage(ctx, stageID)
}

// ByVersion returns the entry recorded for the given version number.
func (l *Ledger) ByVersion(ctx context.Context, stageID int, versionNumber string) (*models.VersionEntry, error) {
	return l.versions.ByVersion(ctx, stageID, versionNumber)
}

// summaryHistoryLimit caps the number of entries shown in a summary.
const summaryHistoryLimit = 10

// Summary builds the condensed version view for a stage.
func (l *Ledger) Summary(ctx context.Context, stage *models.Stage) (*models.VersionSummary, error) {
	entries, err := l.versions.ListByStage(ctx, stage.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage history: %w", err)
	}

	summary := &models.VersionSummary{
		CurrentVersion: stage.VersionNumber,
		LastAction:     stage.LastAction,
		LastUpdated:    stage.LastActionTimestamp,
		TotalVersions:  len(entries),
	}
	if summary.CurrentVersion == "" {
		summary.CurrentVersion = models.InitialVersion
	}

	limit := len(entries)
	if limit > summaryHistoryLimit {
		limit = summaryHistoryLimit
	}
	for _, e := range entries[:limit] {
		action, _ := e.Metadata["action"].(string)
		summary.History = append(summary.History, models.VersionSummaryItem{
			Version:   e.VersionNumber,
			Action:    action,
			Timestamp: e.Timestamp,
			Metadata:  e.Metadata,
		})
	}
	return summary, nil
}
