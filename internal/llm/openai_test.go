package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenAIClient(&config.LLMConfig{
		Provider:       "openai",
		BaseURL:        server.URL + "/v1/",
		APIKey:         "sk-test",
		Model:          "gpt-test",
		EmbeddingModel: "embed-test",
		Timeout:        5 * time.Second,
	}, nil)
}

func TestChatCompletion_SendsToolsAndParsesToolCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])
		tools := body["tools"].([]any)
		require.Len(t, tools, 1)
		assert.Equal(t, "record_assessment", tools[0].(map[string]any)["function"].(map[string]any)["name"])
		assert.Equal(t, "function", body["tool_choice"].(map[string]any)["type"])

		_, _ = io.WriteString(w, `{"model":"gpt-test","choices":[{"finish_reason":"tool_calls","message":{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":"record_assessment","arguments":"{\"summary\":\"ok\"}"}}]}}]}`)
	})

	completion, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages:   []domain.ChatMessage{{Role: "user", Content: "hi"}},
		Tools:      []domain.ToolDefinition{{Name: "record_assessment", Parameters: map[string]any{"type": "object"}}},
		ToolChoice: "record_assessment",
	})
	require.NoError(t, err)
	assert.Equal(t, "tool_calls", completion.FinishReason)
	require.Len(t, completion.Message.ToolCalls, 1)
	assert.Equal(t, "record_assessment", completion.Message.ToolCalls[0].Name)
	assert.JSONEq(t, `{"summary":"ok"}`, completion.Message.ToolCalls[0].Arguments)
}

func TestChatCompletion_NoChoicesIsInvalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[]}`)
	})

	_, err := client.ChatCompletion(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestChatCompletion_ServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"message":"overloaded"}}`)
	})

	_, err := client.ChatCompletion(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.ErrorContains(t, err, "overloaded")
}

func TestChatCompletion_BadRequestIsPlainError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"bad model"}}`)
	})

	_, err := client.ChatCompletion(context.Background(), ChatRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)
	assert.ErrorContains(t, err, "bad model")
}

func TestEmbed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "embed-test", body["model"])
		assert.Equal(t, "rusty door", body["input"])
		_, _ = io.WriteString(w, `{"data":[{"index":0,"embedding":[0.1,0.2,0.3]}]}`)
	})

	result, err := client.Embed(context.Background(), "rusty door")
	require.NoError(t, err)
	assert.Equal(t, "embed-test", result.Model)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, result.Vector)
}

func TestChatCompletion_ThrottledIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"slow down","type":"rate_limit"}}`)
	})

	_, err := client.ChatCompletion(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestChatCompletion_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ChatCompletion(ctx, ChatRequest{})
	assert.ErrorIs(t, err, ErrInferenceTimeout)
}

func TestNotConfigured(t *testing.T) {
	client := NewOpenAIClient(&config.LLMConfig{}, nil)

	_, err := client.Embed(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.ChatCompletion(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(&config.LLMConfig{Provider: "vllm", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "vllm", p.Name())
	assert.Equal(t, "m", p.Model())

	_, err = NewProvider(&config.LLMConfig{Provider: "nope"})
	assert.Error(t, err)
}
