package codegen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
)

type stubRetriever struct {
	context string
	queries []string
}

func (s *stubRetriever) RetrieveContext(_ context.Context, _, query string, _ int) (string, error) {
	s.queries = append(s.queries, query)
	return s.context, nil
}

type stubPrompts struct{ prompt string }

func (s stubPrompts) Load(string, string) (string, error) { return s.prompt, nil }

func testStage() *models.Stage {
	return &models.Stage{
		ID:            1,
		StageNumber:   2,
		StageName:     "Conveyor Run",
		StageType:     models.StageTypeOperation,
		OriginalLogic: "run the conveyor while the sensor is clear",
	}
}

func TestGenerate(t *testing.T) {
	retriever := &stubRetriever{context: "FX5U timers use TON."}
	var gotMessages []llm.Message
	var gotOpts llm.Options
	client := llm.ChatFunc(func(_ context.Context, messages []llm.Message, opts llm.Options) (string, error) {
		gotMessages = messages
		gotOpts = opts
		return sampleOutput, nil
	})

	gen := NewGenerator(client, retriever, stubPrompts{prompt: "You generate ST code."})
	result, err := gen.Generate(context.Background(), testStage())
	require.NoError(t, err)

	assert.Equal(t, "STAGE_2", result.ProgramName)
	assert.Equal(t, models.ExecutionScan, result.ExecutionType)
	assert.Equal(t, sampleOutput, result.Raw)
	require.NotNil(t, result.Parsed)
	assert.Len(t, result.Parsed.ProgramBlocks, 2)

	// Manual context is retrieved once per canned query and folded into the
	// system prompt.
	assert.Equal(t, generationQueries, retriever.queries)
	require.Len(t, gotMessages, 2)
	assert.Equal(t, llm.RoleSystem, gotMessages[0].Role)
	assert.Contains(t, gotMessages[0].Content, "You generate ST code.")
	assert.Contains(t, gotMessages[0].Content, "MANUAL REFERENCE")
	assert.Contains(t, gotMessages[0].Content, "FX5U timers use TON.")
	assert.Contains(t, gotMessages[1].Content, "Stage Number: 2")
	assert.Contains(t, gotMessages[1].Content, "run the conveyor while the sensor is clear")

	require.NotNil(t, gotOpts.Temperature)
	assert.InDelta(t, generationTemperature, *gotOpts.Temperature, 1e-9)
	assert.Equal(t, generationMaxTokens, gotOpts.MaxTokens)
}

func TestGenerateUsesEditedLogic(t *testing.T) {
	var request string
	client := llm.ChatFunc(func(_ context.Context, messages []llm.Message, _ llm.Options) (string, error) {
		request = messages[1].Content
		return sampleOutput, nil
	})

	stage := testStage()
	stage.EditedLogic = "stop after ten seconds"

	gen := NewGenerator(client, &stubRetriever{}, stubPrompts{prompt: "p"})
	_, err := gen.Generate(context.Background(), stage)
	require.NoError(t, err)
	assert.Contains(t, request, "stop after ten seconds")
	assert.NotContains(t, request, "run the conveyor while the sensor is clear")
}

func TestGenerateEmptyResponse(t *testing.T) {
	client := llm.ChatFunc(func(context.Context, []llm.Message, llm.Options) (string, error) {
		return "   \n", nil
	})

	gen := NewGenerator(client, &stubRetriever{}, stubPrompts{prompt: "p"})
	_, err := gen.Generate(context.Background(), testStage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGenerateUnparseableResponse(t *testing.T) {
	client := llm.ChatFunc(func(context.Context, []llm.Message, llm.Options) (string, error) {
		return "I cannot help with that.", nil
	})

	gen := NewGenerator(client, &stubRetriever{}, stubPrompts{prompt: "p"})
	result, err := gen.Generate(context.Background(), testStage())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	// The raw response is still returned for logging and the ledger.
	require.NotNil(t, result)
	assert.Equal(t, "I cannot help with that.", result.Raw)
}

func TestGenerateLLMError(t *testing.T) {
	client := llm.ChatFunc(func(context.Context, []llm.Message, llm.Options) (string, error) {
		return "", errors.New("rate limited")
	})

	gen := NewGenerator(client, &stubRetriever{}, stubPrompts{prompt: "p"})
	_, err := gen.Generate(context.Background(), testStage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
