package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

// ProjectService implements the project lifecycle: create, read, hard delete.
type ProjectService struct {
	store  *repository.Store
	locks  *projectLocks
	access *accessControl
}

// Create registers a new active project owned by ownerID.
func (s *ProjectService) Create(ctx context.Context, ownerID int, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "project name is required")
	}
	if ownerID <= 0 {
		return nil, NewValidationError("owner_id", "owner is required")
	}

	project, err := s.store.Projects.Create(ctx, &models.Project{
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
		Status:      models.ProjectStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created", "project_id", project.ID, "owner_id", ownerID)
	return project, nil
}

// Get returns the project iff the caller owns it.
func (s *ProjectService) Get(ctx context.Context, projectID, userID int) (*models.Project, error) {
	return s.access.project(ctx, projectID, userID)
}

// ListForUser returns every project owned by userID.
func (s *ProjectService) ListForUser(ctx context.Context, userID int) ([]*models.Project, error) {
	return s.store.Projects.ListForUser(ctx, userID)
}

// ListAll returns every project regardless of owner.
func (s *ProjectService) ListAll(ctx context.Context) ([]*models.Project, error) {
	return s.store.Projects.ListAll(ctx)
}

// Delete hard-deletes the project and everything it owns.
func (s *ProjectService) Delete(ctx context.Context, projectID, userID int) error {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return err
	}

	lock := s.locks.lock(projectID)
	defer lock.Unlock()

	if err := s.store.Projects.HardDelete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project %d: %w", projectID, notFoundAs(err, ErrNotFound))
	}

	slog.Info("Project deleted", "project_id", projectID, "user_id", userID)
	return nil
}
