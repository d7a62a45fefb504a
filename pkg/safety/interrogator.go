// Package safety interrogates generated code against the project's safety
// manual corpus and manages manual ingestion.
package safety

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
	interrogationTemperature = 0.1
	interrogationMaxTokens   = 2500
	safetyContextChunks      = 5
)

// labelDisplayLimit caps how many labels are listed in the prompt.
const labelDisplayLimit = 10

// ContextRetriever serves formatted safety-rule context for a corpus.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, corpusID, query string, maxChunks int) (string, error)
	Ready(corpusID string) bool
}

// Interrogator checks a stage's generated code against safety rules.
type Interrogator struct {
	llm       llm.Client
	retriever ContextRetriever
}

// NewInterrogator wires the interrogator's collaborators.
func NewInterrogator(client llm.Client, retriever ContextRetriever) *Interrogator {
	return &Interrogator{llm: client, retriever: retriever}
}

// Check interrogates the generated code against the project's safety manual.
// The project's own corpus is preferred; the bundled default safety manuals
// back it up when no upload exists.
func (in *Interrogator) Check(ctx context.Context, projectID int, code *models.GeneratedCode) (*models.SafetyReport, error) {
	safetyContext := in.safetyContext(ctx, projectID, code.ProgramBody)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: interrogationSystemPrompt()},
		{Role: llm.RoleUser, Content: interrogationRequest(code, safetyContext)},
	}

	temp := interrogationTemperature
	response, err := in.llm.Chat(ctx, messages, llm.Options{
		Temperature: &temp,
		MaxTokens:   interrogationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("safety interrogation failed: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return nil, fmt.Errorf("safety interrogation failed: empty response from model")
	}

	report := ParseSafetyReport(response)
	slog.Info("Safety interrogation completed",
		"project_id", projectID, "program", code.ProgramName,
		"status", report.OverallStatus, "severity", report.Severity)
	return report, nil
}

func (in *Interrogator) safetyContext(ctx context.Context, projectID int, query string) string {
	corpusID := retrieval.SafetyCorpus(projectID)
	if !in.retriever.Ready(corpusID) {
		corpusID = retrieval.CorpusDefaultSafety
	}

	text, err := in.retriever.RetrieveContext(ctx, corpusID, query, safetyContextChunks)
	if err != nil || strings.TrimSpace(text) == "" {
		return "No safety manual loaded."
	}
	return text
}

func interrogationRequest(code *models.GeneratedCode, safetyContext string) string {
	return fmt.Sprintf(`Interrogate this PLC code against the safety manual.

=== GENERATED CODE ===
Program Name: %s
Execution Type: %s

Global Labels:
%s

Local Labels:
%s

Program Body:
%s

=== RELEVANT SAFETY RULES ===
%s

Perform complete safety assessment and identify all potential hazards.`,
		code.ProgramName, code.ExecutionType,
		formatLabels(code.GlobalLabels), formatLabels(code.LocalLabels),
		code.ProgramBody, safetyContext)
}

func formatLabels(labels []models.Label) string {
	if len(labels) == 0 {
		return "No labels"
	}

	var lines []string
	for i, label := range labels {
		if i == labelDisplayLimit {
			lines = append(lines, fmt.Sprintf("... and %d more", len(labels)-labelDisplayLimit))
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", label.Name, label.DataType))
	}
	return strings.Join(lines, "\n")
}

func interrogationSystemPrompt() string {
	return `You are a Safety Assessment Expert specializing in PLC control systems.

Your task is to interrogate generated PLC code against the user's safety manual and identify potential safety violations.

Output your assessment in this EXACT format:

==============================
SAFETY ASSESSMENT
==============================
Overall Status: [SAFE / WARNING / UNSAFE]
Severity: [LOW / MEDIUM / HIGH / CRITICAL]

==============================
SAFETY COMPLIANCE CHECK
==============================
[Analysis of code against safety rules]

==============================
POTENTIAL HAZARDS IDENTIFIED
==============================
[List potential hazards, one per line]
- Hazard 1: [Description]
- Hazard 2: [Description]
...

==============================
SAFETY VIOLATIONS
==============================
[List any safety rule violations]
- Violation 1: [Rule violated + explanation]
- Violation 2: [Rule violated + explanation]
...

==============================
REQUIRED ACTIONS
==============================
[List required safety improvements]
- Action 1: [What must be done]
- Action 2: [What must be done]
...

==============================
RECOMMENDATIONS
==============================
[Additional safety recommendations]
- Recommendation 1
- Recommendation 2
...

Be thorough and focus on SAFETY-CRITICAL issues. If code is safe, say so clearly.`
}
