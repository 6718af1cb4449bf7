package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// ProviderConfig selects and configures an LLM backend.
type ProviderConfig struct {
	Provider string // "openai" (any OpenAI-compatible endpoint) or "anthropic"
	Endpoint string
	Model    string
	APIKey   string
}

// NewClient creates an LLM client for the configured provider.
// Returns Client interface to enable dependency injection of mocks.
func NewClient(cfg *ProviderConfig, logger *zap.Logger) (Client, error) {
	clientCfg := &Config{
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
	}

	switch cfg.Provider {
	case "openai":
		client, err := NewOpenAIClient(clientCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return client, nil
	case "anthropic":
		client, err := NewAnthropicClient(clientCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
