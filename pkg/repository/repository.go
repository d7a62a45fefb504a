// Package repository defines the typed persistence contracts consumed by the
// engine, with a Postgres (ent) implementation and an in-memory one used in
// dev mode and by tests.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// ErrNotFound is returned when the requested row does not exist. The service
// layer maps it onto its own not-found error before it reaches a transport.
var ErrNotFound = errors.New("record not found")

// Projects persists Project rows. HardDelete cascades to every owned row.
type Projects interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	ListForUser(ctx context.Context, ownerID int) ([]*models.Project, error)
	ListAll(ctx context.Context) ([]*models.Project, error)
	HardDelete(ctx context.Context, id int) error
}

// Stages persists Stage rows. ListByProject returns stages ordered by stage
// number ascending.
type Stages interface {
	Create(ctx context.Context, stage *models.Stage) (*models.Stage, error)
	GetByID(ctx context.Context, id int) (*models.Stage, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.Stage, error)
	UpdateLogic(ctx context.Context, id int, editedLogic string) error
	MarkValidated(ctx context.Context, id int) error
	MarkFinalized(ctx context.Context, id int) error
	DeleteProjectStages(ctx context.Context, projectID int) error
	UpdateVersionMetadata(ctx context.Context, id int, version, action string, at time.Time) error
}

// Codes persists GeneratedCode rows: at most one current row per stage.
type Codes interface {
	Create(ctx context.Context, code *models.GeneratedCode) (*models.GeneratedCode, error)
	GetByStage(ctx context.Context, stageID int) (*models.GeneratedCode, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.GeneratedCode, error)
	Update(ctx context.Context, code *models.GeneratedCode) error
	// UpdateGlobalLabels writes the unified global-label set into every
	// code row of the project in one call.
	UpdateGlobalLabels(ctx context.Context, projectID int, labels []models.Label) error
	DeleteByStage(ctx context.Context, stageID int) error
}

// Versions is the append-only ledger store. Entries are never updated nor
// deleted; ListByStage returns entries ordered by timestamp descending.
type Versions interface {
	Append(ctx context.Context, entry *models.VersionEntry) (*models.VersionEntry, error)
	ListByStage(ctx context.Context, stageID int) ([]*models.VersionEntry, error)
	ByVersion(ctx context.Context, stageID int, versionNumber string) (*models.VersionEntry, error)
}

// Manuals persists per-project safety manual records.
type Manuals interface {
	Create(ctx context.Context, manual *models.SafetyManual) (*models.SafetyManual, error)
	GetByProject(ctx context.Context, projectID int) (*models.SafetyManual, error)
	MarkEmbedded(ctx context.Context, id int) error
	DeleteByProject(ctx context.Context, projectID int) error
}

// Files persists upload records for planning input documents.
type Files interface {
	Create(ctx context.Context, file *models.UploadedFile) (*models.UploadedFile, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.UploadedFile, error)
}

// Store bundles every repository behind one injection point.
type Store struct {
	Projects Projects
	Stages   Stages
	Codes    Codes
	Versions Versions
	Manuals  Manuals
	Files    Files
}
