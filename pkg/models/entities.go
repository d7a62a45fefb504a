package models

import "time"

// ProjectStatus lifecycle values.
const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
	ProjectStatusDeleted  = "deleted"
)

// Version ledger action labels. Every engine mutation appends an entry
// tagged with one of these.
const (
	ActionEditLogic    = "edit_logic"
	ActionValidate     = "validate"
	ActionGenerateCode = "generate_code"
	ActionEditCode     = "edit_code"
	ActionSafetyCheck  = "safety_check"
)

// Version ledger entry levels.
const (
	VersionLevelEvent      = "event"
	VersionLevelSession    = "session"
	VersionLevelCheckpoint = "checkpoint"
)

// InitialVersion is the semver every stage starts from.
const InitialVersion = "1.0.0"

// Project owns all downstream rows; hard deletion cascades.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     int       `json:"owner_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stage is one ordered partition of a control process. OriginalLogic is
// immutable after creation; user edits land in EditedLogic.
type Stage struct {
	ID            int               `json:"id"`
	ProjectID     int               `json:"project_id"`
	StageNumber   int               `json:"stage_number"`
	StageName     string            `json:"stage_name"`
	StageType     string            `json:"stage_type"`
	Description   string            `json:"description,omitempty"`
	OriginalLogic string            `json:"original_logic"`
	EditedLogic   string            `json:"edited_logic,omitempty"`
	IsValidated   bool              `json:"is_validated"`
	IsFinalized   bool              `json:"is_finalized"`
	Dependencies  []StageDependency `json:"dependencies,omitempty"`

	VersionNumber       string     `json:"version_number"`
	LastAction          string     `json:"last_action,omitempty"`
	LastActionTimestamp *time.Time `json:"last_action_timestamp,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveLogic returns the edited logic when present, the original
// otherwise. Validation and generation always run on this text.
func (s *Stage) EffectiveLogic() string {
	if s.EditedLogic != "" {
		return s.EditedLogic
	}
	return s.OriginalLogic
}

// GeneratedCode is the current generated artifact set for a stage. At most
// one row exists per stage; regeneration deletes the prior row (its text
// survives in the version ledger).
type GeneratedCode struct {
	ID             int             `json:"id"`
	ProjectID      int             `json:"project_id"`
	StageID        int             `json:"stage_id"`
	GlobalLabels   []Label         `json:"global_labels"`
	LocalLabels    []Label         `json:"local_labels"`
	ProgramBody    string          `json:"program_body"`
	ProgramBlocks  []ProgramBlock  `json:"program_blocks"`
	Functions      []Function      `json:"functions"`
	FunctionBlocks []FunctionBlock `json:"function_blocks"`
	ProgramName    string          `json:"program_name"`
	ExecutionType  string          `json:"execution_type"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// VersionEntry is one append-only ledger record. Entries are never updated
// nor deleted.
type VersionEntry struct {
	ID            int            `json:"id"`
	CodeID        int            `json:"code_id"`
	StageID       int            `json:"stage_id"`
	UserID        int            `json:"user_id"`
	Level         string         `json:"level"`
	VersionNumber string         `json:"version_number"`
	OldCode       string         `json:"old_code,omitempty"`
	NewCode       string         `json:"new_code,omitempty"`
	Diff          string         `json:"diff,omitempty"`
	SessionID     int            `json:"session_id,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// VersionSummary is the condensed per-stage version view.
type VersionSummary struct {
	CurrentVersion string               `json:"current_version"`
	LastAction     string               `json:"last_action,omitempty"`
	LastUpdated    *time.Time           `json:"last_updated,omitempty"`
	TotalVersions  int                  `json:"total_versions"`
	History        []VersionSummaryItem `json:"history"`
}

// VersionSummaryItem is one line of a VersionSummary.
type VersionSummaryItem struct {
	Version   string         `json:"version"`
	Action    string         `json:"action,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// SafetyManual records an uploaded safety document and whether its
// retrieval corpus has been built.
type SafetyManual struct {
	ID         int       `json:"id"`
	ProjectID  int       `json:"project_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	IsEmbedded bool      `json:"is_embedded"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadedFile records a document upload used as planning input.
type UploadedFile struct {
	ID               int       `json:"id"`
	ProjectID        int       `json:"project_id"`
	UserID           int       `json:"user_id"`
	FileType         string    `json:"file_type"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
