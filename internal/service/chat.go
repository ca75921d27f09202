package service

import (
	"context"
	"time"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
)

// FallbackReply is served by the fallback chat endpoint without calling a model
const FallbackReply = "Our assistant is unavailable right now. You can still book an inspection from the dashboard, and a technician will review your vehicle in person."

type ChatService struct {
	provider llm.Provider
}

func NewChatService(provider llm.Provider) *ChatService {
	return &ChatService{provider: provider}
}

// Complete forwards the conversation to the model and returns its reply
func (s *ChatService) Complete(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error) {
	start := time.Now()
	completion, err := s.provider.ChatCompletion(ctx, llm.ChatRequest{Messages: req.ToMessages()})
	metrics.LLMRequestDuration.WithLabelValues("chat", metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return dto.ChatResponse{}, err
	}

	return dto.ChatResponse{
		Message: dto.ChatMessageResponse{
			Role:    string(domain.ChatRoleAssistant),
			Content: completion.Message.Content,
		},
		Model: completion.Model,
	}, nil
}

// Fallback returns the canned assistant reply
func (s *ChatService) Fallback(_ dto.ChatRequest) dto.ChatResponse {
	return dto.ChatResponse{
		Message: dto.ChatMessageResponse{
			Role:    string(domain.ChatRoleAssistant),
			Content: FallbackReply,
		},
	}
}
