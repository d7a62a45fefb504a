package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/prompts"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
)

const (
	segregationTemperature = 0.2
	segregationMaxTokens   = 3000
	segregationQuery       = "PLC stage programming control flow stages"
	segregationMaxChunks   = 2
)

// ContextRetriever serves formatted manual context for prompt composition.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, corpusID, query string, maxChunks int) (string, error)
}

// PromptLoader resolves an agent's current system prompt.
type PromptLoader interface {
	Load(agent, version string) (string, error)
}

// Segregator splits validated control logic into operational stages via the
// planning agent.
type Segregator struct {
	llm       llm.Client
	retriever ContextRetriever
	prompts   PromptLoader
}

// NewSegregator wires the segregator's collaborators.
func NewSegregator(client llm.Client, retriever ContextRetriever, loader PromptLoader) *Segregator {
	return &Segregator{llm: client, retriever: retriever, prompts: loader}
}

type segregation struct {
	Stages       []models.StageDraft      `json:"stages"`
	Dependencies []models.StageDependency `json:"dependencies"`
}

// Segregate asks the planning agent for a stage breakdown. Responses that
// cannot be recovered as JSON degrade to the minimal two-stage plan rather
// than failing the ingestion.
func (s *Segregator) Segregate(ctx context.Context, controlLogic string, analysis models.FlowAnalysis) ([]models.StageDraft, []models.StageDependency, error) {
	systemPrompt, err := s.prompts.Load(prompts.AgentPlanner, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load planner prompt: %w", err)
	}

	manualContext := s.manualContext(ctx)

	messages := []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: systemPrompt + "\n\n=== MANUAL CONTEXT ===\n" + manualContext,
		},
		{
			Role:    llm.RoleUser,
			Content: segregationUserMessage(controlLogic, analysis),
		},
	}

	temp := segregationTemperature
	response, err := s.llm.Chat(ctx, messages, llm.Options{
		Temperature: &temp,
		MaxTokens:   segregationMaxTokens,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("stage segregation failed: %w", err)
	}

	if seg, ok := recoverSegregation(response); ok {
		return seg.Stages, seg.Dependencies, nil
	}

	slog.Warn("Stage segregation response unparseable, using fallback plan")
	fb := fallbackSegregation()
	return fb.Stages, fb.Dependencies, nil
}

func (s *Segregator) manualContext(ctx context.Context) string {
	text, err := s.retriever.RetrieveContext(ctx, retrieval.CorpusPrimaryManuals, segregationQuery, segregationMaxChunks)
	if err != nil {
		return retrieval.FormatContext(nil)
	}
	return text
}

func segregationUserMessage(controlLogic string, analysis models.FlowAnalysis) string {
	actuators := analysis.Actuators
	if len(actuators) > 5 {
		actuators = actuators[:5]
	}

	return fmt.Sprintf(`Analyze this control logic and segregate it into stages.

CONTROL LOGIC:
%s

ANALYSIS SUMMARY:
- Word count: %d
- Complexity: %d
- Has emergency logic: %t
- Has safety logic: %t
- Detected actuators: %s

Respond with the JSON stage segregation only.`,
		controlLogic,
		analysis.WordCount,
		analysis.ComplexityScore,
		analysis.HasEmergency,
		analysis.HasSafety,
		strings.Join(actuators, ", "))
}

// recoverSegregation extracts the outermost {...} block from the response
// and decodes it.
func recoverSegregation(response string) (*segregation, bool) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var seg segregation
	if err := json.Unmarshal([]byte(response[start:end+1]), &seg); err != nil {
		return nil, false
	}
	if len(seg.Stages) == 0 {
		return nil, false
	}
	return &seg, true
}

// fallbackSegregation is the minimal valid plan: the two mandatory stages
// with a single forward transition.
func fallbackSegregation() *segregation {
	return &segregation{
		Stages: []models.StageDraft{
			{
				StageNumber:   0,
				StageName:     "Idle Stage",
				StageType:     models.StageTypeIdle,
				Description:   "System idle state with all outputs safe",
				OriginalLogic: "Initial safe state",
			},
			{
				StageNumber:   1,
				StageName:     "Safety Check Stage",
				StageType:     models.StageTypeSafety,
				Description:   "Verify safety conditions and interlocks",
				OriginalLogic: "Safety validation",
			},
		},
		Dependencies: []models.StageDependency{
			{FromStage: 0, ToStage: 1, Condition: "System ready and no faults"},
		},
	}
}
