package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"choices":[{"message":{"role":"assistant","content":"hola"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}
		}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5", server.URL)

	resp, err := p.Complete(context.Background(), &CompletionRequest{
		Model:    "gpt-5",
		Messages: []Message{{Role: "user", Content: "saluda"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hola", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 12, resp.Usage.TotalTokens)
	assert.Nil(t, gotBody["response_format"])
}

func TestCompleteChatForceJSON(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{}"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5", server.URL)

	_, err := p.CompleteChat(context.Background(), &ChatRequest{
		Model:     "gpt-5",
		System:    "sistema",
		User:      "usuario",
		ForceJSON: true,
	})
	require.NoError(t, err)

	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok, "response_format missing: %v", gotBody)
	assert.Equal(t, "json_object", format["type"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"rate limit"}}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5", server.URL)

	_, err := p.Complete(context.Background(), &CompletionRequest{
		Messages: []Message{{Role: "user", Content: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit")
}

func TestStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"ho\"}}]}\n\n")
		io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"la\"}}]}\n\n")
		io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5", server.URL)

	events, err := p.Stream(context.Background(), &CompletionRequest{
		Messages: []Message{{Role: "user", Content: "saluda"}},
	})
	require.NoError(t, err)

	var content string
	var done bool
	for ev := range events {
		require.NoError(t, ev.Error)
		content += ev.Chunk
		if ev.Done {
			done = true
		}
	}
	assert.Equal(t, "hola", content)
	assert.True(t, done)
}

func TestPingInvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewOpenAIProvider("bad-key", "gpt-5", server.URL)
	err := p.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API key")
}
