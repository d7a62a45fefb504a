// Package validation runs the per-stage logic check against the reference
// manuals and parses the model's sectioned verdict.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
)

const (
	validationTemperature = 0.1
	validationMaxTokens   = 2000
	contextChunksPerQuery = 2
)

var validationQueries = []string{
	"PLC safety requirements interlocks",
	"FX5U device constraints limits",
	"Structured Text programming rules",
}

// ContextRetriever serves formatted manual context for prompt composition.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, corpusID, query string, maxChunks int) (string, error)
}

// Validator checks one stage's logic for safety and consistency problems.
type Validator struct {
	llm       llm.Client
	retriever ContextRetriever
}

// NewValidator wires the validator's collaborators.
func NewValidator(client llm.Client, retriever ContextRetriever) *Validator {
	return &Validator{llm: client, retriever: retriever}
}

// ValidateStage runs the LLM check over the stage's effective logic and
// returns the parsed triage. The report's Valid field follows the
// critical-issue rule, not the literal status line.
func (v *Validator) ValidateStage(ctx context.Context, stage *models.Stage) (*models.ValidationReport, error) {
	manualContext := v.validationContext(ctx)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: validationSystemPrompt(manualContext)},
		{Role: llm.RoleUser, Content: validationRequest(stage)},
	}

	temp := validationTemperature
	response, err := v.llm.Chat(ctx, messages, llm.Options{
		Temperature: &temp,
		MaxTokens:   validationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("stage validation failed: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return nil, fmt.Errorf("stage validation failed: empty response from model")
	}

	report := ParseValidationReport(response)
	slog.Info("Stage validation completed",
		"stage", stage.StageName, "status", report.Status,
		"critical_issues", countCritical(report.CategorizedIssues))
	return report, nil
}

func (v *Validator) validationContext(ctx context.Context) string {
	var contexts []string
	for _, query := range validationQueries {
		text, err := v.retriever.RetrieveContext(ctx, retrieval.CorpusPrimaryManuals, query, contextChunksPerQuery)
		if err != nil || text == "" {
			continue
		}
		contexts = append(contexts, text)
	}
	return strings.Join(contexts, "\n\n")
}

func countCritical(issues []models.CategorizedIssue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == models.SeverityCritical {
			n++
		}
	}
	return n
}

func validationRequest(stage *models.Stage) string {
	return fmt.Sprintf(`Validate this stage logic:

STAGE INFORMATION:
- Stage Number: %d
- Stage Name: %s
- Stage Type: %s

LOGIC TO VALIDATE:
%s

Perform complete validation and provide detailed analysis.`,
		stage.StageNumber, stage.StageName, stage.StageType, stage.EffectiveLogic())
}

func validationSystemPrompt(manualContext string) string {
	return `You are an expert PLC safety and logic validator specializing in Mitsubishi FX5U PLCs.

Validate the stage logic and report findings in TWO sections: standard
issues/recommendations as simple lists, and categorized issues with severity
levels.

Severity rules:
- CRITICAL only for safety violations (missing emergency stop or interlocks),
  logical contradictions, or missing mandatory PLC requirements.
- MODERATE/OPTIONAL for performance improvements, additional features,
  enhanced monitoring, and better practices.
- Do not invent issues; only flag problems clearly present in the logic.
- If the logic already handles emergency stops, interlocks, state management,
  or alarms, do not flag those as missing.
- PASS unless CRITICAL issues exist.

Output your validation in this EXACT format:

==============================
VALIDATION STATUS
==============================
Status: [PASS / FAIL]

==============================
ISSUES
==============================
- [each issue as a simple bullet point]

==============================
RECOMMENDATIONS
==============================
- [each recommendation as a simple bullet point]

==============================
CATEGORIZED ISSUES
==============================

[CRITICAL] Issue Title
Description: Brief explanation of the problem
Recommended Logic:
<ready-made control logic in plain words the user can copy>

==============================
ANALYSIS SUMMARY
==============================
Semantic Analysis: [logic meaning and clarity]
Logical Consistency: [contradictions, conflicts]
Safety Compliance: [safety requirements assessment]

=== MANUAL REFERENCE ===
` + manualContext + `

Recommended logic must be plain language describing what the system should
do, without device assignments or code.`
}
