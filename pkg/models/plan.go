package models

// InputCheck is the result of bounds-checking raw user logic.
type InputCheck struct {
	Valid     bool   `json:"valid"`
	WordCount int    `json:"word_count"`
	Reason    string `json:"reason,omitempty"`
}

// FlowAnalysis is the static feature record computed over raw logic text.
type FlowAnalysis struct {
	HasStart        bool     `json:"has_start"`
	HasStop         bool     `json:"has_stop"`
	HasEmergency    bool     `json:"has_emergency"`
	HasSafety       bool     `json:"has_safety"`
	Sensors         []string `json:"sensors"`
	Actuators       []string `json:"actuators"`
	HasConditions   bool     `json:"has_conditions"`
	HasSequence     bool     `json:"has_sequence"`
	ComplexityScore int      `json:"complexity_score"`
	WordCount       int      `json:"word_count"`
	LineCount       int      `json:"line_count"`
}

// StageDraft is a stage as proposed by the segregator, before persistence.
type StageDraft struct {
	StageNumber   int    `json:"stage_number"`
	StageName     string `json:"stage_name"`
	StageType     string `json:"stage_type"`
	Description   string `json:"description,omitempty"`
	OriginalLogic string `json:"original_logic"`
}

// StageDependency is a directed transition between two stage numbers.
type StageDependency struct {
	FromStage int    `json:"from_stage"`
	ToStage   int    `json:"to_stage"`
	Condition string `json:"condition,omitempty"`
}

// DependencyReport is the dependency validator's verdict. Errors are
// structural (missing endpoints); warnings flag backward edges and
// unreachable stages.
type DependencyReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// GraphNode is one stage in the transition graph.
type GraphNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// GraphEdge is one transition in the graph.
type GraphEdge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
}

// TransitionGraph is the visualization-ready view of stage dependencies.
type TransitionGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Plan is the full planner output for one ingestion run.
type Plan struct {
	Analysis             FlowAnalysis      `json:"analysis"`
	Stages               []StageDraft      `json:"stages"`
	Dependencies         []StageDependency `json:"dependencies"`
	DependencyValidation DependencyReport  `json:"dependency_validation"`
	TransitionGraph      TransitionGraph   `json:"transition_graph"`
	TotalStages          int               `json:"total_stages"`
}
