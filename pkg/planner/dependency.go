package planner

import (
	"fmt"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// ValidateDependencies checks a stage graph for structural problems.
// Missing endpoints are errors; backward edges and stages unreachable from
// stage 0 are warnings.
func ValidateDependencies(stages []models.StageDraft, deps []models.StageDependency) models.DependencyReport {
	report := models.DependencyReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	known := make(map[int]struct{}, len(stages))
	for _, s := range stages {
		known[s.StageNumber] = struct{}{}
	}

	for _, dep := range deps {
		if _, ok := known[dep.FromStage]; !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("Dependency references non-existent stage: %d", dep.FromStage))
		}
		if _, ok := known[dep.ToStage]; !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("Dependency references non-existent stage: %d", dep.ToStage))
		}
		if dep.FromStage >= dep.ToStage {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Backwards dependency: Stage %d → %d", dep.FromStage, dep.ToStage))
		}
	}

	// Single forward propagation pass from stage 0. Forward edges are
	// already ordered, so one pass over the sorted edge list suffices for
	// the reachability warning.
	reachable := map[int]struct{}{0: {}}
	for _, dep := range deps {
		if _, ok := reachable[dep.FromStage]; ok {
			reachable[dep.ToStage] = struct{}{}
		}
	}
	for _, s := range stages {
		if s.StageNumber == 0 {
			continue
		}
		if _, ok := reachable[s.StageNumber]; !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Stage %d may be unreachable", s.StageNumber))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// BuildTransitionGraph projects stages and dependencies into a
// visualization-ready node/edge structure.
func BuildTransitionGraph(stages []models.StageDraft, deps []models.StageDependency) models.TransitionGraph {
	graph := models.TransitionGraph{
		Nodes: make([]models.GraphNode, 0, len(stages)),
		Edges: make([]models.GraphEdge, 0, len(deps)),
	}

	for _, s := range stages {
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:    s.StageNumber,
			Label: s.StageName,
			Type:  s.StageType,
		})
	}
	for _, dep := range deps {
		graph.Edges = append(graph.Edges, models.GraphEdge{
			From:  dep.FromStage,
			To:    dep.ToStage,
			Label: dep.Condition,
		})
	}
	return graph
}
