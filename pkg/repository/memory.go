package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// memory is the process-local backing store shared by the in-memory repos.
// Every read returns a copy so callers can't mutate stored rows in place.
type memory struct {
	mu     sync.RWMutex
	nextID int

	projects map[int]models.Project
	stages   map[int]models.Stage
	codes    map[int]models.GeneratedCode
	versions map[int]models.VersionEntry
	manuals  map[int]models.SafetyManual
	files    map[int]models.UploadedFile
}

// NewMemoryStore creates a Store backed by process memory. Used when no
// database is configured and throughout the engine test suites.
func NewMemoryStore() *Store {
	m := &memory{
		nextID:   1,
		projects: make(map[int]models.Project),
		stages:   make(map[int]models.Stage),
		codes:    make(map[int]models.GeneratedCode),
		versions: make(map[int]models.VersionEntry),
		manuals:  make(map[int]models.SafetyManual),
		files:    make(map[int]models.UploadedFile),
	}
	return &Store{
		Projects: (*memProjects)(m),
		Stages:   (*memStages)(m),
		Codes:    (*memCodes)(m),
		Versions: (*memVersions)(m),
		Manuals:  (*memManuals)(m),
		Files:    (*memFiles)(m),
	}
}

func (m *memory) id() int {
	id := m.nextID
	m.nextID++
	return id
}

type memProjects memory

func (m *memProjects) Create(_ context.Context, project *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := *project
	p.ID = (*memory)(m).id()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}
	m.projects[p.ID] = p
	out := p
	return &out, nil
}

func (m *memProjects) GetByID(_ context.Context, id int) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (m *memProjects) ListForUser(_ context.Context, ownerID int) ([]*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Project
	for _, p := range m.projects {
		if p.OwnerID == ownerID {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProjects) ListAll(_ context.Context) ([]*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Project
	for _, p := range m.projects {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProjects) HardDelete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	for sid, s := range m.stages {
		if s.ProjectID == id {
			delete(m.stages, sid)
		}
	}
	for cid, c := range m.codes {
		if c.ProjectID == id {
			delete(m.codes, cid)
		}
	}
	for mid, man := range m.manuals {
		if man.ProjectID == id {
			delete(m.manuals, mid)
		}
	}
	for fid, f := range m.files {
		if f.ProjectID == id {
			delete(m.files, fid)
		}
	}
	return nil
}

type memStages memory

func (m *memStages) Create(_ context.Context, stage *models.Stage) (*models.Stage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := *stage
	s.ID = (*memory)(m).id()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.VersionNumber == "" {
		s.VersionNumber = models.InitialVersion
	}
	s.Dependencies = append([]models.StageDependency(nil), stage.Dependencies...)
	m.stages[s.ID] = s
	out := s
	return &out, nil
}

func (m *memStages) GetByID(_ context.Context, id int) (*models.Stage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stages[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s
	out.Dependencies = append([]models.StageDependency(nil), s.Dependencies...)
	return &out, nil
}

func (m *memStages) ListByProject(_ context.Context, projectID int) ([]*models.Stage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Stage
	for _, s := range m.stages {
		if s.ProjectID == projectID {
			cp := s
			cp.Dependencies = append([]models.StageDependency(nil), s.Dependencies...)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StageNumber < out[j].StageNumber })
	return out, nil
}

func (m *memStages) UpdateLogic(_ context.Context, id int, editedLogic string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stages[id]
	if !ok {
		return ErrNotFound
	}
	s.EditedLogic = editedLogic
	s.IsValidated = false
	s.UpdatedAt = time.Now().UTC()
	m.stages[id] = s
	return nil
}

func (m *memStages) MarkValidated(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stages[id]
	if !ok {
		return ErrNotFound
	}
	s.IsValidated = true
	s.UpdatedAt = time.Now().UTC()
	m.stages[id] = s
	return nil
}

func (m *memStages) MarkFinalized(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stages[id]
	if !ok {
		return ErrNotFound
	}
	s.IsFinalized = true
	s.UpdatedAt = time.Now().UTC()
	m.stages[id] = s
	return nil
}

func (m *memStages) DeleteProjectStages(_ context.Context, projectID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.stages {
		if s.ProjectID == projectID {
			delete(m.stages, id)
		}
	}
	// Mirror the Postgres ON DELETE CASCADE from stage to its code rows.
	for id, c := range m.codes {
		if c.ProjectID == projectID {
			delete(m.codes, id)
		}
	}
	return nil
}

func (m *memStages) UpdateVersionMetadata(_ context.Context, id int, version, action string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stages[id]
	if !ok {
		return ErrNotFound
	}
	s.VersionNumber = version
	s.LastAction = action
	ts := at
	s.LastActionTimestamp = &ts
	s.UpdatedAt = time.Now().UTC()
	m.stages[id] = s
	return nil
}

type memCodes memory

func copyCode(c models.GeneratedCode) models.GeneratedCode {
	out := c
	out.GlobalLabels = append([]models.Label(nil), c.GlobalLabels...)
	out.LocalLabels = append([]models.Label(nil), c.LocalLabels...)
	out.ProgramBlocks = append([]models.ProgramBlock(nil), c.ProgramBlocks...)
	out.Functions = append([]models.Function(nil), c.Functions...)
	out.FunctionBlocks = append([]models.FunctionBlock(nil), c.FunctionBlocks...)
	return out
}

func (m *memCodes) Create(_ context.Context, code *models.GeneratedCode) (*models.GeneratedCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := copyCode(*code)
	c.ID = (*memory)(m).id()
	c.CreatedAt = time.Now().UTC()
	m.codes[c.ID] = c
	out := copyCode(c)
	return &out, nil
}

func (m *memCodes) GetByStage(_ context.Context, stageID int) (*models.GeneratedCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.codes {
		if c.StageID == stageID {
			out := copyCode(c)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memCodes) ListByProject(_ context.Context, projectID int) ([]*models.GeneratedCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.GeneratedCode
	for _, c := range m.codes {
		if c.ProjectID == projectID {
			cp := copyCode(c)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCodes) Update(_ context.Context, code *models.GeneratedCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.codes[code.ID]
	if !ok {
		return ErrNotFound
	}
	c := copyCode(*code)
	c.CreatedAt = existing.CreatedAt
	m.codes[c.ID] = c
	return nil
}

func (m *memCodes) UpdateGlobalLabels(_ context.Context, projectID int, labels []models.Label) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.codes {
		if c.ProjectID == projectID {
			c.GlobalLabels = append([]models.Label(nil), labels...)
			m.codes[id] = c
		}
	}
	return nil
}

func (m *memCodes) DeleteByStage(_ context.Context, stageID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.codes {
		if c.StageID == stageID {
			delete(m.codes, id)
		}
	}
	return nil
}

type memVersions memory

func (m *memVersions) Append(_ context.Context, entry *models.VersionEntry) (*models.VersionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := *entry
	e.ID = (*memory)(m).id()
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	m.versions[e.ID] = e
	out := e
	return &out, nil
}

func (m *memVersions) ListByStage(_ context.Context, stageID int) ([]*models.VersionEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.VersionEntry
	for _, e := range m.versions {
		if e.StageID == stageID {
			cp := e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (m *memVersions) ByVersion(_ context.Context, stageID int, versionNumber string) (*models.VersionEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.versions {
		if e.StageID == stageID && e.VersionNumber == versionNumber {
			cp := e
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

type memManuals memory

func (m *memManuals) Create(_ context.Context, manual *models.SafetyManual) (*models.SafetyManual, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	man := *manual
	man.ID = (*memory)(m).id()
	man.UploadedAt = time.Now().UTC()
	m.manuals[man.ID] = man
	out := man
	return &out, nil
}

func (m *memManuals) GetByProject(_ context.Context, projectID int) (*models.SafetyManual, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *models.SafetyManual
	for _, man := range m.manuals {
		if man.ProjectID != projectID {
			continue
		}
		cp := man
		if latest == nil || cp.ID > latest.ID {
			latest = &cp
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *memManuals) MarkEmbedded(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	man, ok := m.manuals[id]
	if !ok {
		return ErrNotFound
	}
	man.IsEmbedded = true
	m.manuals[id] = man
	return nil
}

func (m *memManuals) DeleteByProject(_ context.Context, projectID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, man := range m.manuals {
		if man.ProjectID == projectID {
			delete(m.manuals, id)
		}
	}
	return nil
}

type memFiles memory

func (m *memFiles) Create(_ context.Context, file *models.UploadedFile) (*models.UploadedFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := *file
	f.ID = (*memory)(m).id()
	f.UploadedAt = time.Now().UTC()
	m.files[f.ID] = f
	out := f
	return &out, nil
}

func (m *memFiles) ListByProject(_ context.Context, projectID int) ([]*models.UploadedFile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.UploadedFile
	for _, f := range m.files {
		if f.ProjectID == projectID {
			cp := f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
