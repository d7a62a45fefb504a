// Package retrieval maintains per-corpus semantic chunk indexes over
// technical and safety manuals and serves nearest-neighbor lookups.
package retrieval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nexus-controls/plcforge/pkg/embedding"
)

// Well-known corpus identifiers.
const (
	CorpusPrimaryManuals = "primary_manuals"
	CorpusDefaultSafety  = "default_safety_manuals"
)

// SafetyCorpus returns the corpus identifier for a project's uploaded
// safety manual.
func SafetyCorpus(projectID int) string {
	return fmt.Sprintf("safety_manual_%d", projectID)
}

// Chunking parameters: overlapping windows keep rule context intact across
// chunk boundaries.
const (
	chunkSizeWords    = 300
	chunkOverlapWords = 50
)

// minContentLength rejects near-empty documents before embedding.
const minContentLength = 100

// ErrEmptyContent is returned when a corpus build receives no usable text.
var ErrEmptyContent = errors.New("corpus content too short or empty")

// NotReadyError is returned when a corpus has not been built or its
// persisted files cannot be loaded.
type NotReadyError struct {
	Corpus string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("retrieval corpus %q is not ready", e.Corpus)
}

// Document is one source document queued for ingestion.
type Document struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Chunk is one immutable indexed text window.
type Chunk struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// Metadata summarizes a built corpus.
type Metadata struct {
	Corpus      string   `json:"corpus"`
	TotalChunks int      `json:"total_chunks"`
	WordCount   int      `json:"word_count"`
	Sources     []string `json:"sources"`
}

// Result is one retrieval hit, ranked from 1.
type Result struct {
	Rank   int     `json:"rank"`
	Text   string  `json:"text"`
	Source string  `json:"source,omitempty"`
	Score  float64 `json:"score"`
}

type corpus struct {
	chunks  []Chunk
	vectors [][]float32
	meta    Metadata
}

// Store holds every loaded corpus in memory and persists them under dir.
// Reads are concurrent; builds are exclusive per corpus.
type Store struct {
	dir    string
	engine embedding.Engine

	mu      sync.RWMutex
	corpora map[string]*corpus

	buildMu sync.Mutex
	builds  map[string]*sync.Mutex
}

// NewStore creates a store rooted at dir using the given embedder.
func NewStore(dir string, engine embedding.Engine) *Store {
	return &Store{
		dir:     dir,
		engine:  engine,
		corpora: make(map[string]*corpus),
		builds:  make(map[string]*sync.Mutex),
	}
}

func (s *Store) buildLock(corpusID string) *sync.Mutex {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	if _, ok := s.builds[corpusID]; !ok {
		s.builds[corpusID] = &sync.Mutex{}
	}
	return s.builds[corpusID]
}

// Build chunks, embeds, persists, and installs a corpus. An existing corpus
// with the same id is replaced. Builds for the same corpus are serialized.
func (s *Store) Build(ctx context.Context, corpusID string, docs []Document) (*Metadata, error) {
	lock := s.buildLock(corpusID)
	lock.Lock()
	defer lock.Unlock()

	var chunks []Chunk
	var sources []string
	totalWords := 0

	for _, doc := range docs {
		text := strings.TrimSpace(doc.Text)
		if text == "" {
			continue
		}
		sources = append(sources, doc.Source)
		totalWords += len(strings.Fields(text))
		for _, c := range chunkWords(text, chunkSizeWords, chunkOverlapWords) {
			chunks = append(chunks, Chunk{Text: c, Source: doc.Source})
		}
	}

	if len(chunks) == 0 || totalWords*5 < minContentLength {
		return nil, fmt.Errorf("%w: corpus %s", ErrEmptyContent, corpusID)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := s.engine.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed corpus %s: %w", corpusID, err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	meta := Metadata{
		Corpus:      corpusID,
		TotalChunks: len(chunks),
		WordCount:   totalWords,
		Sources:     sources,
	}

	c := &corpus{chunks: chunks, vectors: vectors, meta: meta}
	if err := s.persist(corpusID, c); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.corpora[corpusID] = c
	s.mu.Unlock()

	slog.Info("Retrieval corpus built",
		"corpus", corpusID, "chunks", len(chunks), "words", totalWords)
	return &meta, nil
}

// EnsureLoaded lazily loads a persisted corpus into memory. Idempotent.
func (s *Store) EnsureLoaded(corpusID string) error {
	s.mu.RLock()
	_, ok := s.corpora[corpusID]
	s.mu.RUnlock()
	if ok {
		return nil
	}

	c, err := s.load(corpusID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.corpora[corpusID] = c
	s.mu.Unlock()
	return nil
}

// Ready reports whether a corpus is loadable without error.
func (s *Store) Ready(corpusID string) bool {
	return s.EnsureLoaded(corpusID) == nil
}

// Retrieve returns the topK nearest chunks for the query, ranked from 1.
// Equal scores keep stored chunk order.
func (s *Store) Retrieve(ctx context.Context, corpusID, query string, topK int) ([]Result, error) {
	if err := s.EnsureLoaded(corpusID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	c := s.corpora[corpusID]
	s.mu.RUnlock()

	queryVec, err := s.engine.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := embedding.FindTopK(queryVec, c.vectors, topK)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(hits))
	for i, h := range hits {
		chunk := c.chunks[h.Index]
		results = append(results, Result{
			Rank:   i + 1,
			Text:   chunk.Text,
			Source: chunk.Source,
			Score:  h.Similarity,
		})
	}
	return results, nil
}

// RetrieveContext retrieves up to maxChunks chunks and formats them as a
// single prompt-ready context string.
func (s *Store) RetrieveContext(ctx context.Context, corpusID, query string, maxChunks int) (string, error) {
	results, err := s.Retrieve(ctx, corpusID, query, maxChunks)
	if err != nil {
		return "", err
	}
	return FormatContext(results), nil
}

// FormatContext joins retrieval hits with separators, tagging each chunk
// with its source document when known.
func FormatContext(results []Result) string {
	if len(results) == 0 {
		return "No relevant information found in manuals."
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Source != "" {
			parts = append(parts, fmt.Sprintf("[Source: %s]\n%s\n", r.Source, r.Text))
		} else {
			parts = append(parts, r.Text)
		}
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// Metadata returns the stored metadata for a loaded corpus.
func (s *Store) Metadata(corpusID string) (*Metadata, error) {
	if err := s.EnsureLoaded(corpusID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta := s.corpora[corpusID].meta
	return &meta, nil
}

func (s *Store) chunksPath(corpusID string) string {
	return filepath.Join(s.dir, corpusID+".chunks.json")
}

func (s *Store) vectorsPath(corpusID string) string {
	return filepath.Join(s.dir, corpusID+".index.json")
}

func (s *Store) metaPath(corpusID string) string {
	return filepath.Join(s.dir, corpusID+".meta.json")
}

func (s *Store) persist(corpusID string, c *corpus) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create embeddings dir: %w", err)
	}
	if err := writeJSON(s.chunksPath(corpusID), c.chunks); err != nil {
		return err
	}
	if err := writeJSON(s.vectorsPath(corpusID), c.vectors); err != nil {
		return err
	}
	return writeJSON(s.metaPath(corpusID), c.meta)
}

func (s *Store) load(corpusID string) (*corpus, error) {
	var c corpus
	if err := readJSON(s.chunksPath(corpusID), &c.chunks); err != nil {
		return nil, &NotReadyError{Corpus: corpusID}
	}
	if err := readJSON(s.vectorsPath(corpusID), &c.vectors); err != nil {
		return nil, &NotReadyError{Corpus: corpusID}
	}
	if err := readJSON(s.metaPath(corpusID), &c.meta); err != nil {
		return nil, &NotReadyError{Corpus: corpusID}
	}
	if len(c.chunks) != len(c.vectors) {
		return nil, &NotReadyError{Corpus: corpusID}
	}
	return &c, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// chunkWords splits text into overlapping windows of size words.
func chunkWords(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := size - overlap
	if step <= 0 {
		step = size
	}

	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(words) {
			break
		}
	}
	return chunks
}
