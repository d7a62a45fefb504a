package safety

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/nexus-controls/plcforge/pkg/extract"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
)

// CorpusBuilder ingests documents into a named retrieval corpus.
type CorpusBuilder interface {
	Build(ctx context.Context, corpusID string, docs []retrieval.Document) (*retrieval.Metadata, error)
}

// ManualProcessor extracts an uploaded safety manual and builds the
// project's safety corpus from it.
type ManualProcessor struct {
	docs    *extract.Documents
	builder CorpusBuilder
}

// NewManualProcessor wires the processor's collaborators.
func NewManualProcessor(builder CorpusBuilder) *ManualProcessor {
	return &ManualProcessor{docs: extract.NewDocuments(), builder: builder}
}

// Process extracts the manual at path and replaces the project's safety
// corpus with its content.
func (p *ManualProcessor) Process(ctx context.Context, projectID int, path string) (*retrieval.Metadata, error) {
	text, err := p.docs.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract safety manual: %w", err)
	}

	meta, err := p.builder.Build(ctx, retrieval.SafetyCorpus(projectID), []retrieval.Document{
		{Source: filepath.Base(path), Text: text},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build safety corpus: %w", err)
	}

	slog.Info("Safety manual processed",
		"project_id", projectID, "file", filepath.Base(path), "chunks", meta.TotalChunks)
	return meta, nil
}
