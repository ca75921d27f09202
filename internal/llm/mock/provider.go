package mock

import (
	"context"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
)

// MockProvider satisfies llm.Provider for testing.
type MockProvider struct {
	Name_              string
	Model_             string
	ChatCompletionFunc func(ctx context.Context, req llm.ChatRequest) (*domain.ChatCompletion, error)
	EmbedFunc          func(ctx context.Context, input string) (*llm.EmbeddingResult, error)
}

func (m *MockProvider) Name() string { return m.Name_ }

func (m *MockProvider) Model() string { return m.Model_ }

func (m *MockProvider) ChatCompletion(ctx context.Context, req llm.ChatRequest) (*domain.ChatCompletion, error) {
	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, req)
	}
	return &domain.ChatCompletion{Model: m.Model_, Message: domain.ChatMessage{Role: string(domain.ChatRoleAssistant)}}, nil
}

func (m *MockProvider) Embed(ctx context.Context, input string) (*llm.EmbeddingResult, error) {
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, input)
	}
	return &llm.EmbeddingResult{Model: m.Model_, Vector: []float32{}}, nil
}

// NewMockProvider returns a MockProvider that answers with a fixed reply and a 3-dim embedding.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Name_:  "mock",
		Model_: "mock-v1",
		ChatCompletionFunc: func(_ context.Context, _ llm.ChatRequest) (*domain.ChatCompletion, error) {
			return &domain.ChatCompletion{
				Model:        "mock-v1",
				Message:      domain.ChatMessage{Role: string(domain.ChatRoleAssistant), Content: "Mock reply"},
				FinishReason: "stop",
			}, nil
		},
		EmbedFunc: func(_ context.Context, _ string) (*llm.EmbeddingResult, error) {
			return &llm.EmbeddingResult{Model: "mock-embed", Vector: []float32{1, 0, 0}}, nil
		},
	}
}

// NewFailingProvider returns a MockProvider that always returns the given error.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		Name_:  "mock-failing",
		Model_: "mock-v1",
		ChatCompletionFunc: func(_ context.Context, _ llm.ChatRequest) (*domain.ChatCompletion, error) {
			return nil, err
		},
		EmbedFunc: func(_ context.Context, _ string) (*llm.EmbeddingResult, error) {
			return nil, err
		},
	}
}

// Compile-time check that MockProvider implements Provider.
var _ llm.Provider = (*MockProvider)(nil)
