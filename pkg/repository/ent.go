package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/nexus-controls/plcforge/ent"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/ent/uploadedfile"
	"github.com/nexus-controls/plcforge/ent/versionentry"
	"github.com/nexus-controls/plcforge/pkg/models"
)

// opTimeout bounds every repository operation independently of the caller's
// deadline.
const opTimeout = 10 * time.Second

// NewEntStore creates a Store backed by the given Ent client.
func NewEntStore(client *ent.Client) *Store {
	return &Store{
		Projects: &entProjects{client: client},
		Stages:   &entStages{client: client},
		Codes:    &entCodes{client: client},
		Versions: &entVersions{client: client},
		Manuals:  &entManuals{client: client},
		Files:    &entFiles{client: client},
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// mapNotFound converts Ent's not-found error into the repository sentinel.
func mapNotFound(err error, op string) error {
	if ent.IsNotFound(err) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type entProjects struct {
	client *ent.Client
}

func projectFromEnt(row *ent.Project) *models.Project {
	return &models.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		OwnerID:     row.OwnerID,
		Status:      string(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *entProjects) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	status := p.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	row, err := r.client.Project.Create().
		SetName(p.Name).
		SetDescription(p.Description).
		SetOwnerID(p.OwnerID).
		SetStatus(project.Status(status)).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return projectFromEnt(row), nil
}

func (r *entProjects) GetByID(ctx context.Context, id int) (*models.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.Project.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to get project")
	}
	return projectFromEnt(row), nil
}

func (r *entProjects) ListForUser(ctx context.Context, ownerID int) ([]*models.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.Project.Query().
		Where(project.OwnerID(ownerID)).
		Order(project.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	out := make([]*models.Project, len(rows))
	for i, row := range rows {
		out[i] = projectFromEnt(row)
	}
	return out, nil
}

func (r *entProjects) ListAll(ctx context.Context) ([]*models.Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.Project.Query().
		Order(project.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	out := make([]*models.Project, len(rows))
	for i, row := range rows {
		out[i] = projectFromEnt(row)
	}
	return out, nil
}

func (r *entProjects) HardDelete(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Owned rows go with it via ON DELETE CASCADE.
	if err := r.client.Project.DeleteOneID(id).Exec(ctx); err != nil {
		return mapNotFound(err, "failed to delete project")
	}
	return nil
}

type entStages struct {
	client *ent.Client
}

func stageFromEnt(row *ent.Stage) *models.Stage {
	return &models.Stage{
		ID:                  row.ID,
		ProjectID:           row.ProjectID,
		StageNumber:         row.StageNumber,
		StageName:           row.StageName,
		StageType:           string(row.StageType),
		Description:         row.Description,
		OriginalLogic:       row.OriginalLogic,
		EditedLogic:         row.EditedLogic,
		IsValidated:         row.IsValidated,
		IsFinalized:         row.IsFinalized,
		Dependencies:        row.Dependencies,
		VersionNumber:       row.VersionNumber,
		LastAction:          row.LastAction,
		LastActionTimestamp: row.LastActionTimestamp,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func (r *entStages) Create(ctx context.Context, s *models.Stage) (*models.Stage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	version := s.VersionNumber
	if version == "" {
		version = models.InitialVersion
	}
	row, err := r.client.Stage.Create().
		SetProjectID(s.ProjectID).
		SetStageNumber(s.StageNumber).
		SetStageName(s.StageName).
		SetStageType(stage.StageType(s.StageType)).
		SetDescription(s.Description).
		SetOriginalLogic(s.OriginalLogic).
		SetDependencies(s.Dependencies).
		SetVersionNumber(version).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	return stageFromEnt(row), nil
}

func (r *entStages) GetByID(ctx context.Context, id int) (*models.Stage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.Stage.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to get stage")
	}
	return stageFromEnt(row), nil
}

func (r *entStages) ListByProject(ctx context.Context, projectID int) ([]*models.Stage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.Stage.Query().
		Where(stage.ProjectID(projectID)).
		Order(stage.ByStageNumber()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	out := make([]*models.Stage, len(rows))
	for i, row := range rows {
		out[i] = stageFromEnt(row)
	}
	return out, nil
}

func (r *entStages) UpdateLogic(ctx context.Context, id int, editedLogic string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Edited logic invalidates any earlier validation verdict.
	err := r.client.Stage.UpdateOneID(id).
		SetEditedLogic(editedLogic).
		SetIsValidated(false).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to update stage logic")
	}
	return nil
}

func (r *entStages) MarkValidated(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.client.Stage.UpdateOneID(id).
		SetIsValidated(true).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to mark stage validated")
	}
	return nil
}

func (r *entStages) MarkFinalized(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.client.Stage.UpdateOneID(id).
		SetIsFinalized(true).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to mark stage finalized")
	}
	return nil
}

func (r *entStages) DeleteProjectStages(ctx context.Context, projectID int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.client.Stage.Delete().
		Where(stage.ProjectID(projectID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete project stages: %w", err)
	}
	return nil
}

func (r *entStages) UpdateVersionMetadata(ctx context.Context, id int, version, action string, at time.Time) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.client.Stage.UpdateOneID(id).
		SetVersionNumber(version).
		SetLastAction(action).
		SetLastActionTimestamp(at).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to update stage version")
	}
	return nil
}

type entCodes struct {
	client *ent.Client
}

func codeFromEnt(row *ent.GeneratedCode) *models.GeneratedCode {
	return &models.GeneratedCode{
		ID:             row.ID,
		ProjectID:      row.ProjectID,
		StageID:        row.StageID,
		GlobalLabels:   row.GlobalLabels,
		LocalLabels:    row.LocalLabels,
		ProgramBody:    row.ProgramBody,
		ProgramBlocks:  row.ProgramBlocks,
		Functions:      row.Functions,
		FunctionBlocks: row.FunctionBlocks,
		ProgramName:    row.ProgramName,
		ExecutionType:  string(row.ExecutionType),
		Metadata:       row.CodeMetadata,
		CreatedAt:      row.CreatedAt,
	}
}

func (r *entCodes) Create(ctx context.Context, c *models.GeneratedCode) (*models.GeneratedCode, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.GeneratedCode.Create().
		SetProjectID(c.ProjectID).
		SetStageID(c.StageID).
		SetGlobalLabels(c.GlobalLabels).
		SetLocalLabels(c.LocalLabels).
		SetProgramBody(c.ProgramBody).
		SetProgramBlocks(c.ProgramBlocks).
		SetFunctions(c.Functions).
		SetFunctionBlocks(c.FunctionBlocks).
		SetProgramName(c.ProgramName).
		SetExecutionType(generatedcode.ExecutionType(c.ExecutionType)).
		SetCodeMetadata(c.Metadata).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated code: %w", err)
	}
	return codeFromEnt(row), nil
}

func (r *entCodes) GetByStage(ctx context.Context, stageID int) (*models.GeneratedCode, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.GeneratedCode.Query().
		Where(generatedcode.StageID(stageID)).
		Only(ctx)
	if err != nil {
		return nil, mapNotFound(err, "failed to get generated code")
	}
	return codeFromEnt(row), nil
}

func (r *entCodes) ListByProject(ctx context.Context, projectID int) ([]*models.GeneratedCode, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.GeneratedCode.Query().
		Where(generatedcode.ProjectID(projectID)).
		Order(generatedcode.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated code: %w", err)
	}
	out := make([]*models.GeneratedCode, len(rows))
	for i, row := range rows {
		out[i] = codeFromEnt(row)
	}
	return out, nil
}

func (r *entCodes) Update(ctx context.Context, c *models.GeneratedCode) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.client.GeneratedCode.UpdateOneID(c.ID).
		SetGlobalLabels(c.GlobalLabels).
		SetLocalLabels(c.LocalLabels).
		SetProgramBody(c.ProgramBody).
		SetProgramBlocks(c.ProgramBlocks).
		SetFunctions(c.Functions).
		SetFunctionBlocks(c.FunctionBlocks).
		SetProgramName(c.ProgramName).
		SetExecutionType(generatedcode.ExecutionType(c.ExecutionType)).
		SetCodeMetadata(c.Metadata).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to update generated code")
	}
	return nil
}

func (r *entCodes) UpdateGlobalLabels(ctx context.Context, projectID int, labels []models.Label) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.client.GeneratedCode.Update().
		Where(generatedcode.ProjectID(projectID)).
		SetGlobalLabels(labels).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update global labels: %w", err)
	}
	return nil
}

func (r *entCodes) DeleteByStage(ctx context.Context, stageID int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.client.GeneratedCode.Delete().
		Where(generatedcode.StageID(stageID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete generated code: %w", err)
	}
	return nil
}

type entVersions struct {
	client *ent.Client
}

func versionFromEnt(row *ent.VersionEntry) *models.VersionEntry {
	return &models.VersionEntry{
		ID:            row.ID,
		CodeID:        row.CodeID,
		StageID:       row.StageID,
		UserID:        row.UserID,
		Level:         string(row.Level),
		VersionNumber: row.VersionNumber,
		OldCode:       row.OldCode,
		NewCode:       row.NewCode,
		Diff:          row.Diff,
		SessionID:     row.SessionID,
		Timestamp:     row.Timestamp,
		Metadata:      row.Metadata,
	}
}

func (r *entVersions) Append(ctx context.Context, e *models.VersionEntry) (*models.VersionEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	level := e.Level
	if level == "" {
		level = models.VersionLevelEvent
	}
	row, err := r.client.VersionEntry.Create().
		SetCodeID(e.CodeID).
		SetStageID(e.StageID).
		SetUserID(e.UserID).
		SetLevel(versionentry.Level(level)).
		SetVersionNumber(e.VersionNumber).
		SetOldCode(e.OldCode).
		SetNewCode(e.NewCode).
		SetDiff(e.Diff).
		SetSessionID(e.SessionID).
		SetTimestamp(ts).
		SetMetadata(e.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append version entry: %w", err)
	}
	return versionFromEnt(row), nil
}

func (r *entVersions) ListByStage(ctx context.Context, stageID int) ([]*models.VersionEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.VersionEntry.Query().
		Where(versionentry.StageID(stageID)).
		Order(versionentry.ByTimestamp(sql.OrderDesc()), versionentry.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list version entries: %w", err)
	}
	out := make([]*models.VersionEntry, len(rows))
	for i, row := range rows {
		out[i] = versionFromEnt(row)
	}
	return out, nil
}

func (r *entVersions) ByVersion(ctx context.Context, stageID int, versionNumber string) (*models.VersionEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.VersionEntry.Query().
		Where(
			versionentry.StageID(stageID),
			versionentry.VersionNumber(versionNumber),
		).
		Order(versionentry.ByTimestamp(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, mapNotFound(err, "failed to get version entry")
	}
	return versionFromEnt(row), nil
}

type entManuals struct {
	client *ent.Client
}

func manualFromEnt(row *ent.SafetyManual) *models.SafetyManual {
	return &models.SafetyManual{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		Filename:   row.Filename,
		FilePath:   row.FilePath,
		IsEmbedded: row.IsEmbedded,
		UploadedAt: row.UploadedAt,
	}
}

func (r *entManuals) Create(ctx context.Context, m *models.SafetyManual) (*models.SafetyManual, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.SafetyManual.Create().
		SetProjectID(m.ProjectID).
		SetFilename(m.Filename).
		SetFilePath(m.FilePath).
		SetIsEmbedded(m.IsEmbedded).
		SetUploadedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create safety manual: %w", err)
	}
	return manualFromEnt(row), nil
}

func (r *entManuals) GetByProject(ctx context.Context, projectID int) (*models.SafetyManual, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.SafetyManual.Query().
		Where(safetymanual.ProjectID(projectID)).
		Order(safetymanual.ByID(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, mapNotFound(err, "failed to get safety manual")
	}
	return manualFromEnt(row), nil
}

func (r *entManuals) MarkEmbedded(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.client.SafetyManual.UpdateOneID(id).
		SetIsEmbedded(true).
		Exec(ctx)
	if err != nil {
		return mapNotFound(err, "failed to mark safety manual embedded")
	}
	return nil
}

func (r *entManuals) DeleteByProject(ctx context.Context, projectID int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.client.SafetyManual.Delete().
		Where(safetymanual.ProjectID(projectID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete safety manuals: %w", err)
	}
	return nil
}

type entFiles struct {
	client *ent.Client
}

func fileFromEnt(row *ent.UploadedFile) *models.UploadedFile {
	return &models.UploadedFile{
		ID:               row.ID,
		ProjectID:        row.ProjectID,
		UserID:           row.UserID,
		FileType:         row.FileType,
		OriginalFilename: row.OriginalFilename,
		StoredFilename:   row.StoredFilename,
		FilePath:         row.FilePath,
		FileSize:         row.FileSize,
		UploadedAt:       row.UploadedAt,
	}
}

func (r *entFiles) Create(ctx context.Context, f *models.UploadedFile) (*models.UploadedFile, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row, err := r.client.UploadedFile.Create().
		SetProjectID(f.ProjectID).
		SetUserID(f.UserID).
		SetFileType(f.FileType).
		SetOriginalFilename(f.OriginalFilename).
		SetStoredFilename(f.StoredFilename).
		SetFilePath(f.FilePath).
		SetFileSize(f.FileSize).
		SetUploadedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create uploaded file: %w", err)
	}
	return fileFromEnt(row), nil
}

func (r *entFiles) ListByProject(ctx context.Context, projectID int) ([]*models.UploadedFile, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.client.UploadedFile.Query().
		Where(uploadedfile.ProjectID(projectID)).
		Order(uploadedfile.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded files: %w", err)
	}
	out := make([]*models.UploadedFile, len(rows))
	for i, row := range rows {
		out[i] = fileFromEnt(row)
	}
	return out, nil
}
