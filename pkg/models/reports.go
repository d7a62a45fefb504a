package models

// Categorized issue severities.
const (
	SeverityCritical = "critical"
	SeverityModerate = "moderate"
	SeverityOptional = "optional"
)

// CategorizedIssue is a severity-tagged validator finding.
type CategorizedIssue struct {
	Severity         string `json:"severity"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	RecommendedLogic string `json:"recommended_logic,omitempty"`
}

// ValidationReport is the stage validator's structured triage.
// Valid is true iff no categorized issue is critical, regardless of the
// literal status line the model emitted.
type ValidationReport struct {
	Valid              bool               `json:"valid"`
	Status             string             `json:"status"`
	SemanticAnalysis   string             `json:"semantic_analysis,omitempty"`
	LogicalConsistency string             `json:"logical_consistency,omitempty"`
	SafetyCompliance   string             `json:"safety_compliance,omitempty"`
	Issues             []string           `json:"issues"`
	Recommendations    []string           `json:"recommendations"`
	CategorizedIssues  []CategorizedIssue `json:"categorized_issues"`
}

// Safety interrogation overall statuses.
const (
	SafetyStatusSafe    = "SAFE"
	SafetyStatusWarning = "WARNING"
	SafetyStatusUnsafe  = "UNSAFE"
)

// SafetyReport is the safety interrogator's structured result.
type SafetyReport struct {
	OverallStatus   string   `json:"overall_status"`
	Severity        string   `json:"severity"`
	Assessment      string   `json:"assessment,omitempty"`
	ComplianceCheck string   `json:"compliance_check,omitempty"`
	Hazards         []string `json:"hazards"`
	Violations      []string `json:"violations"`
	RequiredActions []string `json:"required_actions"`
	Recommendations []string `json:"recommendations"`
}

// Passed reports whether the interrogation found no blocking problems.
func (r *SafetyReport) Passed() bool {
	return r.OverallStatus == SafetyStatusSafe
}
