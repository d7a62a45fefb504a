package versioning

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

func ledgerFixture(t *testing.T) (*Ledger, *models.Stage) {
	t.Helper()
	store := repository.NewMemoryStore()
	stage, err := store.Stages.Create(context.Background(), &models.Stage{
		ProjectID:     1,
		StageNumber:   2,
		StageName:     "Conveyor Operation",
		StageType:     models.StageTypeOperation,
		OriginalLogic: "Start conveyor on button press",
	})
	require.NoError(t, err)
	return NewLedger(store.Versions), stage
}

func TestLedger_AppendComputesVersionAndDiff(t *testing.T) {
	ledger, stage := ledgerFixture(t)

	entry, err := ledger.Append(context.Background(), stage, Record{
		UserID:  7,
		Action:  models.ActionEditLogic,
		OldText: "Start conveyor on button press",
		NewText: "Start conveyor on button press\nStop on emergency",
	})
	require.NoError(t, err)

	assert.Equal(t, "1.0.1", entry.VersionNumber)
	assert.Equal(t, models.VersionLevelEvent, entry.Level)
	assert.Equal(t, "1.0.0", entry.Metadata["previous_version"])
	assert.Equal(t, "1.0.1", entry.Metadata["new_version"])
	assert.Contains(t, entry.Diff, "+Stop on emergency")
	assert.True(t, strings.HasPrefix(entry.Diff, "--- before\n+++ after\n"))
}

func TestLedger_NoDiffForNonTextActions(t *testing.T) {
	ledger, stage := ledgerFixture(t)

	entry, err := ledger.Append(context.Background(), stage, Record{
		UserID: 7,
		Action: models.ActionValidate,
		Metadata: map[string]any{
			"validation_status": "PASS",
			"passed":            true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1.1.0", entry.VersionNumber)
	assert.Empty(t, entry.Diff)
	assert.Equal(t, "PASS", entry.Metadata["validation_status"])
}

func TestLedger_HistoryNewestFirstAndAppendOnly(t *testing.T) {
	ledger, stage := ledgerFixture(t)
	ctx := context.Background()

	actions := []string{
		models.ActionEditLogic,
		models.ActionValidate,
		models.ActionEditLogic,
		models.ActionGenerateCode,
	}
	version := stage.VersionNumber
	for _, action := range actions {
		entry, err := ledger.Append(ctx, stage, Record{UserID: 1, Action: action})
		require.NoError(t, err)
		stage.VersionNumber = entry.VersionNumber
		require.Equal(t, 1, Compare(entry.VersionNumber, version),
			"ledger versions must be strictly increasing")
		version = entry.VersionNumber
	}

	history, err := ledger.History(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)

	// Newest first; version sequence strictly decreasing down the list.
	assert.Equal(t, "1.2.0", history[0].VersionNumber)
	for i := 1; i < len(history); i++ {
		assert.Equal(t, -1, Compare(history[i].VersionNumber, history[i-1].VersionNumber))
	}

	// Matching action labels, oldest to newest.
	for i, action := range actions {
		got, _ := history[len(history)-1-i].Metadata["action"].(string)
		assert.Equal(t, action, got)
	}
}

func TestLedger_ByVersion(t *testing.T) {
	ledger, stage := ledgerFixture(t)
	ctx := context.Background()

	entry, err := ledger.Append(ctx, stage, Record{UserID: 1, Action: models.ActionValidate})
	require.NoError(t, err)

	found, err := ledger.ByVersion(ctx, stage.ID, entry.VersionNumber)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, found.ID)

	_, err = ledger.ByVersion(ctx, stage.ID, "9.9.9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLedger_Summary(t *testing.T) {
	ledger, stage := ledgerFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		entry, err := ledger.Append(ctx, stage, Record{UserID: 1, Action: models.ActionEditLogic})
		require.NoError(t, err)
		stage.VersionNumber = entry.VersionNumber
	}

	summary, err := ledger.Summary(ctx, stage)
	require.NoError(t, err)
	assert.Equal(t, "1.0.12", summary.CurrentVersion)
	assert.Equal(t, 12, summary.TotalVersions)
	assert.Len(t, summary.History, 10)
}

func TestUnifiedDiff(t *testing.T) {
	oldText := "a\nb\nc\nd\ne\nf\ng\nh\n"
	newText := "a\nb\nc\nX\ne\nf\ng\nh\n"

	diff := UnifiedDiff(oldText, newText)
	assert.Contains(t, diff, "-d")
	assert.Contains(t, diff, "+X")
	assert.Contains(t, diff, "@@ -1,7 +1,7 @@")

	assert.Empty(t, UnifiedDiff("same", "same"))
	assert.Empty(t, UnifiedDiff("", ""))
}
