// Package models defines the domain types shared by the engine, the
// repositories, and the HTTP layer.
package models

// Execution types for program blocks, mapped from stage types.
const (
	ExecutionScan      = "Scan"
	ExecutionInitial   = "Initial"
	ExecutionEvent     = "Event"
	ExecutionFixedScan = "Fixed Scan"
	ExecutionStandby   = "Standby"
)

// Stage types produced by the stage segregator.
const (
	StageTypeIdle       = "idle"
	StageTypeSafety     = "safety"
	StageTypeOperation  = "operation"
	StageTypeFault      = "fault"
	StageTypeShutdown   = "shutdown"
	StageTypeValidation = "validation"
)

// Label is a symbolic PLC variable with data type, class, and an optional
// device assignment. Global labels carry devices; local labels usually don't.
type Label struct {
	Name         string `json:"name"`
	DataType     string `json:"data_type"`
	Class        string `json:"class"`
	Device       string `json:"device,omitempty"`
	InitialValue string `json:"initial_value,omitempty"`
	Constant     bool   `json:"constant"`
	Comment      string `json:"comment,omitempty"`
	Remark       string `json:"remark,omitempty"`
}

// Identity returns the merge key for global-label deduplication: the device
// when assigned, the name otherwise.
func (l Label) Identity() string {
	if l.Device != "" {
		return l.Device
	}
	return l.Name
}

// ProgramBlock is one named ST program unit generated for a stage.
type ProgramBlock struct {
	Stage         string  `json:"stage"`
	Name          string  `json:"name"`
	ExecutionType string  `json:"execution_type"`
	LocalLabels   []Label `json:"local_labels"`
	Code          string  `json:"code"`
}

// Function is a named ST function with a result type.
type Function struct {
	Stage       string  `json:"stage"`
	Name        string  `json:"name"`
	ResultType  string  `json:"result_type"`
	WithEN      bool    `json:"with_en"`
	LocalLabels []Label `json:"local_labels"`
	Code        string  `json:"code"`
}

// FunctionBlock is a named ST function block.
type FunctionBlock struct {
	Stage       string  `json:"stage"`
	Name        string  `json:"name"`
	FBType      string  `json:"fb_type"`
	WithEN      bool    `json:"with_en"`
	LocalLabels []Label `json:"local_labels"`
	Code        string  `json:"code"`
}

// ParsedProgram is the typed result of parsing generator output.
// LocalLabels and ProgramBody mirror the first program block for callers
// that predate the multi-block shape.
type ParsedProgram struct {
	GlobalLabels   []Label         `json:"global_labels"`
	ProgramBlocks  []ProgramBlock  `json:"program_blocks"`
	Functions      []Function      `json:"functions"`
	FunctionBlocks []FunctionBlock `json:"function_blocks"`
	LocalLabels    []Label         `json:"local_labels"`
	ProgramBody    string          `json:"program_body"`
}
