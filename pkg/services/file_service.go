package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nexus-controls/plcforge/pkg/extract"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/repository"
)

// maxUploadSize bounds planning document uploads.
const maxUploadSize = 20 << 20 // 20 MiB

// FileService stores planning input documents and extracts their text for
// ingestion.
type FileService struct {
	store      *repository.Store
	access     *accessControl
	uploadsDir string
}

// Upload persists the document under a collision-free name, records it, and
// returns the record together with the extracted text.
func (s *FileService) Upload(ctx context.Context, projectID, userID int, originalName string, content []byte) (*models.UploadedFile, string, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, "", err
	}
	if len(content) == 0 {
		return nil, "", NewValidationError("file", "uploaded file is empty")
	}
	if len(content) > maxUploadSize {
		return nil, "", NewValidationError("file", "uploaded file exceeds the size limit")
	}

	ext := filepath.Ext(originalName)
	stored := uuid.NewString() + ext
	path := filepath.Join(s.uploadsDir, stored)

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create uploads dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to store upload: %w", err)
	}

	text, err := extract.NewDocuments().Extract(path)
	if err != nil {
		return nil, "", err
	}

	record, err := s.store.Files.Create(ctx, &models.UploadedFile{
		ProjectID:        projectID,
		UserID:           userID,
		FileType:         ext,
		OriginalFilename: originalName,
		StoredFilename:   stored,
		FilePath:         path,
		FileSize:         int64(len(content)),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to record upload: %w", err)
	}

	slog.Info("Planning document uploaded",
		"project_id", projectID, "file", originalName, "bytes", len(content))
	return record, text, nil
}

// List returns the project's upload records.
func (s *FileService) List(ctx context.Context, projectID, userID int) ([]*models.UploadedFile, error) {
	if _, err := s.access.project(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.store.Files.ListByProject(ctx, projectID)
}

// SavePath stores a safety manual upload and returns its on-disk path. It is
// shared with the safety upload flow, which records the manual itself.
func (s *FileService) SavePath(originalName string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", NewValidationError("file", "uploaded file is empty")
	}
	if len(content) > maxUploadSize {
		return "", NewValidationError("file", "uploaded file exceeds the size limit")
	}

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}
	path := filepath.Join(s.uploadsDir, uuid.NewString()+filepath.Ext(originalName))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}
