// Package planner turns raw natural-language control logic into a staged
// execution plan: input bounds check, static flow analysis, LLM-driven stage
// segregation, and a dependency-graph validation pass.
package planner

import (
	"context"
	"fmt"

	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// Planner runs the full planning pipeline.
type Planner struct {
	segregator *Segregator
	limits     Limits
}

// New creates a planner with the given collaborators and input limits.
func New(client llm.Client, retriever ContextRetriever, loader PromptLoader, limits Limits) *Planner {
	if limits.MinWords <= 0 {
		limits = DefaultLimits()
	}
	return &Planner{
		segregator: NewSegregator(client, retriever, loader),
		limits:     limits,
	}
}

// CreatePlan produces a complete plan for the control logic. Rejected input
// returns *InputError; the dependency validation verdict is reported in the
// plan, not enforced.
func (p *Planner) CreatePlan(ctx context.Context, controlLogic string) (*models.Plan, error) {
	check := CheckInput(controlLogic, p.limits)
	if !check.Valid {
		return nil, &InputError{Reason: check.Reason, WordCount: check.WordCount}
	}

	analysis := Analyze(controlLogic)

	stages, deps, err := p.segregator.Segregate(ctx, controlLogic, analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return &models.Plan{
		Analysis:             analysis,
		Stages:               stages,
		Dependencies:         deps,
		DependencyValidation: ValidateDependencies(stages, deps),
		TransitionGraph:      BuildTransitionGraph(stages, deps),
		TotalStages:          len(stages),
	}, nil
}
