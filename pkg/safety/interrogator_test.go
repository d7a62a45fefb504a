package safety

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
)

type fakeRetriever struct {
	ready    map[string]bool
	context  string
	lastUsed string
}

func (f *fakeRetriever) RetrieveContext(_ context.Context, corpusID, _ string, _ int) (string, error) {
	f.lastUsed = corpusID
	return f.context, nil
}

func (f *fakeRetriever) Ready(corpusID string) bool { return f.ready[corpusID] }

func sampleCode() *models.GeneratedCode {
	return &models.GeneratedCode{
		ProjectID:     3,
		StageID:       1,
		ProgramName:   "STAGE_1",
		ExecutionType: models.ExecutionScan,
		GlobalLabels:  []models.Label{{Name: "Start_Button", DataType: "Bool", Device: "X0"}},
		ProgramBody:   "IF Start_Button THEN Motor := TRUE; END_IF;",
	}
}

func TestInterrogator_UsesProjectCorpusWhenReady(t *testing.T) {
	retriever := &fakeRetriever{
		ready:   map[string]bool{"safety_manual_3": true},
		context: "Rule 4.2: door interlocks required",
	}

	var gotPrompt string
	client := llm.ChatFunc(func(_ context.Context, messages []llm.Message, opts llm.Options) (string, error) {
		gotPrompt = messages[1].Content
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.1, *opts.Temperature)
		assert.Equal(t, 2500, opts.MaxTokens)
		return "Overall Status: SAFE\nSeverity: LOW", nil
	})

	report, err := NewInterrogator(client, retriever).Check(context.Background(), 3, sampleCode())
	require.NoError(t, err)

	assert.Equal(t, "safety_manual_3", retriever.lastUsed)
	assert.True(t, report.Passed())
	assert.Contains(t, gotPrompt, "Program Name: STAGE_1")
	assert.Contains(t, gotPrompt, "Rule 4.2: door interlocks required")
	assert.Contains(t, gotPrompt, "- Start_Button: Bool")
}

func TestInterrogator_FallsBackToDefaultCorpus(t *testing.T) {
	retriever := &fakeRetriever{
		ready:   map[string]bool{"default_safety_manuals": true},
		context: "default rules",
	}
	client := llm.ChatFunc(func(_ context.Context, _ []llm.Message, _ llm.Options) (string, error) {
		return "Overall Status: WARNING\nSeverity: MEDIUM", nil
	})

	report, err := NewInterrogator(client, retriever).Check(context.Background(), 9, sampleCode())
	require.NoError(t, err)

	assert.Equal(t, "default_safety_manuals", retriever.lastUsed)
	assert.Equal(t, models.SafetyStatusWarning, report.OverallStatus)
}

func TestInterrogator_EmptyResponseFails(t *testing.T) {
	retriever := &fakeRetriever{ready: map[string]bool{}}
	client := llm.ChatFunc(func(_ context.Context, _ []llm.Message, _ llm.Options) (string, error) {
		return "   ", nil
	})

	_, err := NewInterrogator(client, retriever).Check(context.Background(), 1, sampleCode())
	assert.Error(t, err)
}
