package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	// Empty dir: no plcforge.yaml, defaults apply.
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-embedding-001", cfg.Embedding.Model)
	assert.Equal(t, 50, cfg.Planner.MinWords)
	assert.Equal(t, 5000, cfg.Planner.MaxWords)
	assert.Empty(t, cfg.Database.Host)
}

func TestInitialize_UserOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9000
llm:
  model: gemini-2.5-pro
planner:
  min_words: 10
  max_words: 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, 10, cfg.Planner.MinWords)
	// Unset values keep defaults.
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.LLM.BaseURL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_GEMINI_KEY", "sk-test-123")
	yaml := `
llm:
  api_key: "{{.TEST_GEMINI_KEY}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.LLM.APIKey)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("server: [not a map"), 0o644))

	_, err := Initialize(dir)
	assert.Error(t, err)
}

func TestValidate_Bounds(t *testing.T) {
	cfg := Defaults()
	cfg.Planner.MaxWords = cfg.Planner.MinWords
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Database.Host = "localhost"
	cfg.Database.Database = ""
	assert.Error(t, cfg.Validate())
}
