package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

// OpenAIClient implements Provider against any OpenAI-compatible endpoint.
type OpenAIClient struct {
	cfg    *config.LLMConfig
	client *openai.Client
}

// NewOpenAIClient uses httpClient when given, otherwise one with cfg.Timeout.
func NewOpenAIClient(cfg *config.LLMConfig, httpClient *http.Client) *OpenAIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	clientConfig.HTTPClient = httpClient

	return &OpenAIClient{cfg: cfg, client: openai.NewClientWithConfig(clientConfig)}
}

func (c *OpenAIClient) Name() string { return c.cfg.Provider }

func (c *OpenAIClient) Model() string { return c.cfg.Model }

func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatRequest) (*domain.ChatCompletion, error) {
	if c.cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	body := openai.ChatCompletionRequest{
		Model:     model,
		Messages:  toOpenAIMessages(req.Messages),
		Tools:     toOpenAITools(req.Tools),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		body.Temperature = float32(*req.Temperature)
	}
	if req.ToolChoice != "" {
		body.ToolChoice = toolChoice(req.ToolChoice)
	}

	resp, err := c.client.CreateChatCompletion(ctx, body)
	if err != nil {
		return nil, mapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	return &domain.ChatCompletion{
		Model:        resp.Model,
		Message:      fromOpenAIMessage(choice.Message),
		FinishReason: string(choice.FinishReason),
	}, nil
}

func (c *OpenAIClient) Embed(ctx context.Context, input string) (*EmbeddingResult, error) {
	if c.cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: input,
		Model: openai.EmbeddingModel(c.cfg.EmbeddingModel),
	})
	if err != nil {
		return nil, mapError(err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding", ErrInvalidResponse)
	}

	model := string(resp.Model)
	if model == "" {
		model = c.cfg.EmbeddingModel
	}
	return &EmbeddingResult{Model: model, Vector: resp.Data[0].Embedding}, nil
}

// mapError turns client errors into the package sentinels. Throttling and
// server errors are ErrProviderUnavailable, other statuses stay plain errors.
func mapError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	if status != 0 {
		if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return fmt.Errorf("llm request failed: %w", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrInferenceTimeout, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}

// toolChoice maps "auto"/"none"/"required" through and any other value to a forced function
func toolChoice(choice string) any {
	switch choice {
	case "auto", "none", "required":
		return choice
	default:
		return openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: choice},
		}
	}
}

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
		for _, tc := range m.ToolCalls {
			out[i].ToolCalls = append(out[i].ToolCalls, openai.ToolCall{
				ID:       tc.ID,
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: tc.Name, Arguments: tc.Arguments},
			})
		}
	}
	return out
}

func toOpenAITools(tools []domain.ToolDefinition) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromOpenAIMessage(m openai.ChatCompletionMessage) domain.ChatMessage {
	msg := domain.ChatMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
	for _, tc := range m.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return msg
}

var _ Provider = (*OpenAIClient)(nil)
