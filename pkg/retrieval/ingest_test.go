package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txtOnly reads .txt files and rejects everything else, standing in for the
// full document extractor.
type txtOnly struct{}

func (txtOnly) Extract(path string) (string, error) {
	if filepath.Ext(path) != ".txt" {
		return "", os.ErrInvalid
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeManual(t *testing.T, dir, name, word string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(repeatWords(word, 60)), 0o644))
}

func TestDirIngestor_BuildsPrimaryAndSafetyCorpora(t *testing.T) {
	manuals := t.TempDir()
	writeManual(t, manuals, "fx5u_st.txt", "timer")
	writeManual(t, manuals, "devices.txt", "conveyor")
	safetyDir := filepath.Join(manuals, DefaultSafetySubdir)
	require.NoError(t, os.Mkdir(safetyDir, 0o755))
	writeManual(t, safetyDir, "iec.txt", "interlock")

	store := NewStore(t.TempDir(), testEngine())
	built, err := NewDirIngestor(store, txtOnly{}).IngestManuals(context.Background(), manuals)
	require.NoError(t, err)
	require.Len(t, built, 2)

	assert.Equal(t, CorpusPrimaryManuals, built[0].Corpus)
	// Name order: devices.txt before fx5u_st.txt.
	assert.Equal(t, []string{"devices.txt", "fx5u_st.txt"}, built[0].Sources)
	assert.Equal(t, CorpusDefaultSafety, built[1].Corpus)

	results, err := store.Retrieve(context.Background(), CorpusDefaultSafety, "interlock guard", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "iec.txt", results[0].Source)
}

func TestDirIngestor_SkipsUnreadableFiles(t *testing.T) {
	manuals := t.TempDir()
	writeManual(t, manuals, "good.txt", "valve")
	require.NoError(t, os.WriteFile(filepath.Join(manuals, "scan.pdf"), []byte("%PDF"), 0o644))

	store := NewStore(t.TempDir(), testEngine())
	meta, err := NewDirIngestor(store, txtOnly{}).IngestDir(context.Background(), CorpusPrimaryManuals, manuals)
	require.NoError(t, err)
	assert.Equal(t, []string{"good.txt"}, meta.Sources)
}

func TestDirIngestor_EmptyDirFails(t *testing.T) {
	store := NewStore(t.TempDir(), testEngine())
	_, err := NewDirIngestor(store, txtOnly{}).IngestDir(context.Background(), CorpusPrimaryManuals, t.TempDir())
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = NewDirIngestor(store, txtOnly{}).IngestManuals(context.Background(),
		filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "manuals dir"))
}
