package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenAIEngine_RequiresAPIKey(t *testing.T) {
	_, err := NewGenAIEngine(context.Background(), "", "gemini-embedding-001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestEmbedConfig_TaskType(t *testing.T) {
	cfg := embedConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "RETRIEVAL_DOCUMENT", cfg.TaskType)
}
