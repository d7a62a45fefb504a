package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
)

const passReport = `==============================
VALIDATION STATUS
==============================
Status: PASS

==============================
ISSUES
==============================
- Timer preset value not specified

==============================
RECOMMENDATIONS
==============================
- Document the conveyor restart delay
- Add a low-level sensor check

==============================
CATEGORIZED ISSUES
==============================

[MODERATE] Enhanced Alarm Notification
Description: Adding alarm notifications would improve monitoring.
Recommended Logic:
If tank level exceeds 90% of capacity, activate the high level alarm.
Notify the operator panel.

[OPTIONAL] Scan Time Optimization
Description: Combine adjacent comparisons.
Recommended Logic:
Group the level comparisons into a single evaluation block.

==============================
ANALYSIS SUMMARY
==============================
Semantic Analysis: Clear conditions and actions throughout.
Logical Consistency: No contradictions found.
Safety Compliance: Emergency stop handling present.`

func TestParseValidationReport_Pass(t *testing.T) {
	report := ParseValidationReport(passReport)

	assert.True(t, report.Valid)
	assert.Equal(t, "PASS", report.Status)
	assert.Equal(t, []string{"Timer preset value not specified"}, report.Issues)
	assert.Len(t, report.Recommendations, 2)

	require.Len(t, report.CategorizedIssues, 2)
	moderate := report.CategorizedIssues[0]
	assert.Equal(t, models.SeverityModerate, moderate.Severity)
	assert.Equal(t, "Enhanced Alarm Notification", moderate.Title)
	assert.Equal(t, "Adding alarm notifications would improve monitoring.", moderate.Description)
	assert.Contains(t, moderate.RecommendedLogic, "high level alarm")
	assert.Contains(t, moderate.RecommendedLogic, "operator panel")
	assert.Equal(t, models.SeverityOptional, report.CategorizedIssues[1].Severity)

	assert.Equal(t, "Clear conditions and actions throughout.", report.SemanticAnalysis)
	assert.Equal(t, "No contradictions found.", report.LogicalConsistency)
	assert.Equal(t, "Emergency stop handling present.", report.SafetyCompliance)
}

func TestParseValidationReport_CriticalOverridesStatusLine(t *testing.T) {
	text := `VALIDATION STATUS
Status: PASS

CATEGORIZED ISSUES
[CRITICAL] Missing Emergency Stop
Description: No emergency stop handling is described.
Recommended Logic:
When the emergency stop is pressed, de-energize all outputs immediately.`

	report := ParseValidationReport(text)
	assert.False(t, report.Valid)
	assert.Equal(t, "FAIL", report.Status)
	require.Len(t, report.CategorizedIssues, 1)
	assert.Equal(t, models.SeverityCritical, report.CategorizedIssues[0].Severity)
	assert.Equal(t, "Missing Emergency Stop", report.CategorizedIssues[0].Title)
}

func TestParseValidationReport_FailStatusWithoutCriticalPasses(t *testing.T) {
	text := `VALIDATION STATUS
Status: FAIL

CATEGORIZED ISSUES
[MODERATE] Better Monitoring
Description: Add cycle counters.
Recommended Logic:
Count completed cycles in a retained register.`

	report := ParseValidationReport(text)
	assert.True(t, report.Valid)
	assert.Equal(t, "PASS", report.Status)
}

func TestParseValidationReport_UnparseableSectionsAreEmpty(t *testing.T) {
	report := ParseValidationReport("complete nonsense with no sections at all")

	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
	assert.Empty(t, report.CategorizedIssues)
	assert.Empty(t, report.SemanticAnalysis)
}

type staticRetriever struct{ text string }

func (r *staticRetriever) RetrieveContext(context.Context, string, string, int) (string, error) {
	return r.text, nil
}

func TestValidateStage(t *testing.T) {
	var captured []llm.Message
	client := llm.ChatFunc(func(_ context.Context, msgs []llm.Message, opts llm.Options) (string, error) {
		captured = msgs
		require.NotNil(t, opts.Temperature)
		assert.InDelta(t, 0.1, *opts.Temperature, 1e-9)
		assert.Equal(t, 2000, opts.MaxTokens)
		return passReport, nil
	})

	v := NewValidator(client, &staticRetriever{text: "manual chunk"})
	stage := &models.Stage{
		StageNumber:   2,
		StageName:     "Filling",
		StageType:     models.StageTypeOperation,
		OriginalLogic: "original words",
		EditedLogic:   "edited words win",
	}

	report, err := v.ValidateStage(context.Background(), stage)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	require.Len(t, captured, 2)
	assert.Equal(t, llm.RoleSystem, captured[0].Role)
	assert.Contains(t, captured[0].Content, "manual chunk")
	assert.Contains(t, captured[1].Content, "edited words win")
	assert.NotContains(t, captured[1].Content, "original words")
}

func TestValidateStage_EmptyResponseFails(t *testing.T) {
	client := llm.ChatFunc(func(context.Context, []llm.Message, llm.Options) (string, error) {
		return "", nil
	})
	v := NewValidator(client, &staticRetriever{})

	_, err := v.ValidateStage(context.Background(), &models.Stage{StageName: "Idle"})
	assert.Error(t, err)
}
