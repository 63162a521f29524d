package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"olyph-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		want   string
	}{
		{
			name:   "message with content field",
			choice: `{"message": {"role": "assistant", "content": "hello there"}}`,
			want:   "hello there",
		},
		{
			name:   "dict-shaped message",
			choice: `{"message": {"content": "from the map", "extra": 42}}`,
			want:   "from the map",
		},
		{
			name:   "legacy flat text field",
			choice: `{"text": "legacy completion"}`,
			want:   "legacy completion",
		},
		{
			name:   "nothing extractable",
			choice: `{"finish_reason": "stop"}`,
			want:   "",
		},
		{
			name:   "non-string content falls through to text",
			choice: `{"message": {"content": null}, "text": "fallback"}`,
			want:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractReply(json.RawMessage(tt.choice)))
		})
	}
}

func TestChatExtractsFirstChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Contains(t, r.URL.Path, "/openai/deployments/gpt-test/chat/completions")

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "  the answer  "}}]}`))
	}))
	defer server.Close()

	provider := NewAzureProvider(server.URL, "test-key", "", "gpt-test")
	reply, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are an assistant for Olyphaunt Solutions."},
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", reply)
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := NewAzureProvider(server.URL, "k", "", "d")
	reply, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "", reply)
}

func TestChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewAzureProvider(server.URL, "k", "", "d")
	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestChatUnreachableEndpoint(t *testing.T) {
	provider := NewAzureProvider("http://127.0.0.1:1", "k", "", "d")
	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestGenerateWrapsSingleTurn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		w.Write([]byte(`{"choices": [{"text": "legacy reply"}]}`))
	}))
	defer server.Close()

	provider := NewAzureProvider(server.URL, "k", "", "d")
	reply, err := provider.Generate(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "legacy reply", reply)
}
