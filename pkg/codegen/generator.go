// Package codegen generates Mitsubishi FX5U Structured Text for a stage and
// parses the model's sectioned output into typed program artifacts.
package codegen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/prompts"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
)

const (
	generationTemperature = 0.1
	generationMaxTokens   = 8000
	contextChunksPerQuery = 2
)

var generationQueries = []string{
	"FX5U Structured Text syntax rules",
	"Mitsubishi device symbols M D X Y",
	"GX Works3 program structure global local labels",
}

// ContextRetriever serves formatted manual context for prompt composition.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, corpusID, query string, maxChunks int) (string, error)
}

// PromptLoader resolves an agent's current system prompt.
type PromptLoader interface {
	Load(agent, version string) (string, error)
}

// Result is one stage's generation outcome.
type Result struct {
	Parsed        *models.ParsedProgram
	ProgramName   string
	ExecutionType string
	Raw           string
}

// Generator produces Structured Text artifacts for stages via the codegen
// agent.
type Generator struct {
	llm       llm.Client
	retriever ContextRetriever
	prompts   PromptLoader
}

// NewGenerator wires the generator's collaborators.
func NewGenerator(client llm.Client, retriever ContextRetriever, loader PromptLoader) *Generator {
	return &Generator{llm: client, retriever: retriever, prompts: loader}
}

// Generate asks the codegen agent for a stage's program and parses the
// response. A response with no recognizable program block returns the
// parser's typed error alongside whatever was recovered.
func (g *Generator) Generate(ctx context.Context, stage *models.Stage) (*Result, error) {
	systemPrompt, err := g.prompts.Load(prompts.AgentCodegen, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load codegen prompt: %w", err)
	}

	manualContext := g.generationContext(ctx)

	messages := []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: systemPrompt + "\n\n=== MANUAL REFERENCE ===\n" + manualContext,
		},
		{
			Role:    llm.RoleUser,
			Content: generationRequest(stage),
		},
	}

	slog.Info("Generating code for stage", "stage", stage.StageName, "stage_number", stage.StageNumber)

	temp := generationTemperature
	response, err := g.llm.Chat(ctx, messages, llm.Options{
		Temperature: &temp,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("code generation failed: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return nil, fmt.Errorf("code generation failed: empty response from model")
	}

	parsed, parseErr := Parse(response)
	result := &Result{
		Parsed:        parsed,
		ProgramName:   fmt.Sprintf("STAGE_%d", stage.StageNumber),
		ExecutionType: ExecutionTypeFor(stage.StageType),
		Raw:           response,
	}
	if parseErr != nil {
		return result, parseErr
	}

	slog.Info("Code generation complete",
		"stage", stage.StageName,
		"program_blocks", len(parsed.ProgramBlocks),
		"functions", len(parsed.Functions),
		"function_blocks", len(parsed.FunctionBlocks))
	return result, nil
}

func (g *Generator) generationContext(ctx context.Context) string {
	var contexts []string
	for _, query := range generationQueries {
		text, err := g.retriever.RetrieveContext(ctx, retrieval.CorpusPrimaryManuals, query, contextChunksPerQuery)
		if err != nil || text == "" {
			continue
		}
		contexts = append(contexts, text)
	}
	return strings.Join(contexts, "\n\n")
}

func generationRequest(stage *models.Stage) string {
	return fmt.Sprintf(`Generate Structured Text code for this stage:

STAGE INFORMATION:
- Stage Number: %d
- Stage Name: %s
- Stage Type: %s
- Description: %s

CONTROL LOGIC:
%s

Generate the complete code following the EXACT format specified in your instructions.

CRITICAL: For ALL Program Blocks, Functions, and Function Blocks you generate:
- Include "Stage: %d - %s" in the metadata section

Remember:
- Generate Program Blocks, Functions, and Function Blocks as needed
- Use proper device ranges
- All variables must be in label tables
- No device symbols in code body
- Industrial-grade logic
- Safety-first approach`,
		stage.StageNumber, stage.StageName, stage.StageType, stage.Description,
		stage.EffectiveLogic(),
		stage.StageNumber, stage.StageName)
}

// ExecutionTypeFor maps a stage type onto the GX Works3 execution type of
// its program block.
func ExecutionTypeFor(stageType string) string {
	switch stageType {
	case models.StageTypeIdle:
		return models.ExecutionInitial
	case models.StageTypeFault:
		return models.ExecutionEvent
	default:
		return models.ExecutionScan
	}
}
