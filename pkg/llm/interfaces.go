// Package llm provides clients for external text-completion backends.
package llm

import "context"

// Client defines the interface for LLM text completion.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// GenerateResponse generates a single chat completion for the prompt.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// Ensure implementations satisfy Client at compile time.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
