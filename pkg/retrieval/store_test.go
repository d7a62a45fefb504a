package retrieval

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEngine embeds text as keyword-presence vectors so nearest-neighbor
// results are deterministic in tests.
type keywordEngine struct {
	keywords []string
}

func (e *keywordEngine) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(e.keywords))
	lower := strings.ToLower(text)
	for i, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			vec[i] = 1
		}
	}
	return vec, nil
}

func (e *keywordEngine) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (e *keywordEngine) Dimensions() int { return len(e.keywords) }
func (e *keywordEngine) Name() string    { return "keyword-test" }

func testEngine() *keywordEngine {
	return &keywordEngine{keywords: []string{"conveyor", "interlock", "timer", "valve"}}
}

func repeatWords(word string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = word
	}
	return strings.Join(parts, " ")
}

func TestStore_BuildAndRetrieve(t *testing.T) {
	store := NewStore(t.TempDir(), testEngine())

	docs := []Document{
		{Source: "manual.pdf", Text: repeatWords("conveyor", 60) + " " + repeatWords("interlock", 60)},
	}
	meta, err := store.Build(context.Background(), "primary_manuals", docs)
	require.NoError(t, err)
	assert.Equal(t, "primary_manuals", meta.Corpus)
	assert.Greater(t, meta.TotalChunks, 0)
	assert.Equal(t, 120, meta.WordCount)

	results, err := store.Retrieve(context.Background(), "primary_manuals", "conveyor speed", 2)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "manual.pdf", results[0].Source)
	assert.Contains(t, results[0].Text, "conveyor")
}

func TestStore_RetrieveRanksByRelevance(t *testing.T) {
	store := NewStore(t.TempDir(), testEngine())

	docs := []Document{
		{Source: "a.txt", Text: repeatWords("valve", 40)},
		{Source: "b.txt", Text: repeatWords("timer", 40)},
	}
	_, err := store.Build(context.Background(), "primary_manuals", docs)
	require.NoError(t, err)

	results, err := store.Retrieve(context.Background(), "primary_manuals", "timer delay", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b.txt", results[0].Source)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestStore_NotReady(t *testing.T) {
	store := NewStore(t.TempDir(), testEngine())

	_, err := store.Retrieve(context.Background(), SafetyCorpus(7), "anything", 3)
	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Equal(t, "safety_manual_7", notReady.Corpus)
	assert.False(t, store.Ready(SafetyCorpus(7)))
}

func TestStore_LoadsPersistedCorpus(t *testing.T) {
	dir := t.TempDir()
	engine := testEngine()

	first := NewStore(dir, engine)
	_, err := first.Build(context.Background(), "default_safety_manuals", []Document{
		{Source: "safety.docx", Text: repeatWords("interlock", 50)},
	})
	require.NoError(t, err)

	// A fresh store must lazily load the files the first one persisted.
	second := NewStore(dir, engine)
	results, err := second.Retrieve(context.Background(), "default_safety_manuals", "interlock", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "safety.docx", results[0].Source)
}

func TestStore_BuildRejectsEmptyContent(t *testing.T) {
	store := NewStore(t.TempDir(), testEngine())

	_, err := store.Build(context.Background(), "primary_manuals", []Document{
		{Source: "blank.txt", Text: "   "},
	})
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = store.Build(context.Background(), "primary_manuals", []Document{
		{Source: "short.txt", Text: "too short"},
	})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFormatContext(t *testing.T) {
	out := FormatContext([]Result{
		{Rank: 1, Text: "Keep guards closed.", Source: "safety.pdf"},
		{Rank: 2, Text: "Use TON for delays."},
	})
	assert.Contains(t, out, "[Source: safety.pdf]\nKeep guards closed.")
	assert.Contains(t, out, "\n\n---\n\n")
	assert.Contains(t, out, "Use TON for delays.")

	assert.Equal(t, "No relevant information found in manuals.", FormatContext(nil))
}

func TestChunkWords_Overlap(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "w"
	}
	chunks := chunkWords(strings.Join(words, " "), 300, 50)
	// 500 words at step 250: [0,300) and [250,500).
	require.Len(t, chunks, 2)
	assert.Len(t, strings.Fields(chunks[0]), 300)
	assert.Len(t, strings.Fields(chunks[1]), 250)
}
