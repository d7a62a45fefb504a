package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDOCX(t *testing.T, dir string, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(dir, "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	w := zip.NewWriter(f)
	entry, err := w.Create("word/document.xml")
	require.NoError(t, err)

	xml := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		xml += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}
	xml += `</w:body></w:document>`
	_, err = entry.Write([]byte(xml))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func TestExtract_DOCX(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), []string{"Start the conveyor.", "", "Stop on emergency."})

	text, err := NewDocuments().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Start the conveyor.\nStop on emergency.", text)
}

func TestExtract_TXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logic.txt")
	require.NoError(t, os.WriteFile(path, []byte("press start to run"), 0o644))

	text, err := NewDocuments().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "press start to run", text)
}

func TestExtract_TXT_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.txt")
	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

	text, err := NewDocuments().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := NewDocuments().Extract("notes.md")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_LegacyDocRejected(t *testing.T) {
	_, err := NewDocuments().Extract("manual.doc")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractFile_Metadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logic.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two three four"), 0o644))

	res, err := NewDocuments().ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "logic.txt", res.Filename)
	assert.Equal(t, "txt", res.FileType)
	assert.Equal(t, 4, res.WordCount)
}
