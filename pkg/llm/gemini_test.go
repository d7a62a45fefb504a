package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiOK(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGeminiClient_Chat_FoldsSystemInstruction(t *testing.T) {
	var captured geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(geminiOK("ok")))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "key", "gemini-2.0-flash")
	temp := 0.2
	text, err := c.Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a PLC assistant."},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
		{Role: RoleUser, Content: "generate"},
	}, Options{Temperature: &temp, MaxTokens: 100})

	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "You are a PLC assistant.", captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, 100, captured.GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.2, *captured.GenerationConfig.Temperature, 1e-9)
}

func TestGeminiClient_Chat_JoinsCandidateParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "part one "},
					{"text": "part two"},
				}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "key", "m")
	text, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "part one part two", text)
}

func TestGeminiClient_Chat_EmptyOnNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "key", "m")
	text, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiClient_Chat_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized},
		{"forbidden", http.StatusForbidden, KindUnauthorized},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"server error", http.StatusInternalServerError, KindBadResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewGeminiClient(srv.URL, "key", "m")
			_, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
			require.Error(t, err)
			assert.True(t, IsError(err, tt.kind), "expected kind %s, got %v", tt.kind, err)
		})
	}
}

func TestGeminiClient_Chat_TransportError(t *testing.T) {
	c := NewGeminiClient("http://127.0.0.1:1", "key", "m")
	_, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.Error(t, err)
	assert.True(t, IsError(err, KindTransport))
}
