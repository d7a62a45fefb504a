package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSafetySubdir is the folder under the manuals directory whose
// contents seed the default safety corpus; everything else at the top level
// feeds the primary manual corpus.
const DefaultSafetySubdir = "user_safety_manuals"

// TextExtractor converts a manual file on disk into plain text.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// DirIngestor walks a manuals directory and builds retrieval corpora from
// the documents it finds. Used at deploy time before the server first needs
// manual context.
type DirIngestor struct {
	store     *Store
	extractor TextExtractor
}

// NewDirIngestor wires a directory ingestor over the given store.
func NewDirIngestor(store *Store, extractor TextExtractor) *DirIngestor {
	return &DirIngestor{store: store, extractor: extractor}
}

// IngestDir extracts every supported file directly under dir and replaces
// corpusID with their combined content. Files are processed in name order so
// repeat runs produce identical chunk ordering. Files the extractor rejects
// are skipped with a warning rather than failing the whole corpus.
func (g *DirIngestor) IngestDir(ctx context.Context, corpusID, dir string) (*Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read manuals dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var docs []Document
	for _, name := range names {
		path := filepath.Join(dir, name)
		text, err := g.extractor.Extract(path)
		if err != nil {
			slog.Warn("Skipping manual", "file", name, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			slog.Warn("Skipping manual with no extractable text", "file", name)
			continue
		}
		docs = append(docs, Document{Source: name, Text: text})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no usable documents in %s", ErrEmptyContent, dir)
	}
	return g.store.Build(ctx, corpusID, docs)
}

// IngestManuals builds the primary corpus from the top level of manualsDir
// and, when the safety subdirectory exists, the default safety corpus from
// it. Returns the metadata of every corpus built.
func (g *DirIngestor) IngestManuals(ctx context.Context, manualsDir string) ([]*Metadata, error) {
	primary, err := g.IngestDir(ctx, CorpusPrimaryManuals, manualsDir)
	if err != nil {
		return nil, err
	}
	built := []*Metadata{primary}

	safetyDir := filepath.Join(manualsDir, DefaultSafetySubdir)
	if info, err := os.Stat(safetyDir); err == nil && info.IsDir() {
		safety, err := g.IngestDir(ctx, CorpusDefaultSafety, safetyDir)
		if err != nil {
			return nil, err
		}
		built = append(built, safety)
	} else {
		slog.Info("No default safety manuals directory, skipping", "dir", safetyDir)
	}
	return built, nil
}
