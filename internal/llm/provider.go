// Package llm talks to chat completion and embedding APIs.
package llm

import (
	"context"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

// ChatRequest is a single non-streaming completion request.
type ChatRequest struct {
	// Model overrides the provider default when set
	Model       string
	Messages    []domain.ChatMessage
	Tools       []domain.ToolDefinition
	ToolChoice  string
	Temperature *float64
	MaxTokens   int
}

type EmbeddingResult struct {
	Model  string
	Vector []float32
}

type Provider interface {
	Name() string
	Model() string
	ChatCompletion(ctx context.Context, req ChatRequest) (*domain.ChatCompletion, error)
	Embed(ctx context.Context, input string) (*EmbeddingResult, error)
}
