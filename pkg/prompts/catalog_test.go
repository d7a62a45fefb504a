package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LoadDefaultMaterializes(t *testing.T) {
	dir := t.TempDir()
	catalog := NewCatalog(dir)

	text, err := catalog.Load(AgentCodegen, "")
	require.NoError(t, err)
	assert.Contains(t, text, "GLOBAL LABEL TABLE")
	assert.Contains(t, text, "STRUCTURED TEXT CODE:")

	// The default must now exist on disk as "current".
	_, err = os.Stat(filepath.Join(dir, AgentCodegen, "current.txt"))
	assert.NoError(t, err)
}

func TestCatalog_SaveCreatesVersionAndUpdatesCurrent(t *testing.T) {
	catalog := NewCatalog(t.TempDir())

	version, err := catalog.Save(AgentPlanner, "segregate stages carefully")
	require.NoError(t, err)
	assert.NotEmpty(t, version)

	current, err := catalog.Load(AgentPlanner, "")
	require.NoError(t, err)
	assert.Equal(t, "segregate stages carefully", current)

	stored, err := catalog.Load(AgentPlanner, version)
	require.NoError(t, err)
	assert.Equal(t, current, stored)

	versions, err := catalog.List(AgentPlanner)
	require.NoError(t, err)
	assert.Equal(t, []string{version}, versions)
}

func TestCatalog_UnknownAgentAndVersion(t *testing.T) {
	catalog := NewCatalog(t.TempDir())

	_, err := catalog.Load("someone_else", "")
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, err = catalog.Load(AgentPlanner, "v19990101T000000")
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, err = catalog.Save("someone_else", "text")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestCatalog_SaveRejectsEmpty(t *testing.T) {
	catalog := NewCatalog(t.TempDir())

	_, err := catalog.Save(AgentCodegen, "   ")
	assert.Error(t, err)
}

func TestCatalog_ListEmptyAgentDir(t *testing.T) {
	catalog := NewCatalog(t.TempDir())

	versions, err := catalog.List(AgentCodegen)
	require.NoError(t, err)
	assert.Empty(t, versions)
}
