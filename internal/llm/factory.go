package llm

import (
	"fmt"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
)

// NewProvider constructs the provider named in config. Called once at startup.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai", "vllm", "ollama":
		// All three expose the OpenAI wire format
		return NewOpenAIClient(cfg, nil), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q: must be one of openai, vllm, ollama", cfg.Provider)
	}
}
