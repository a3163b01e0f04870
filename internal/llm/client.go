// Package llm provides a unified client interface for LLM providers
// (Google Gemini and OpenAI-compatible endpoints such as Groq). It
// handles API authentication, model listing, and text generation, plus
// the catalog fetch and deterministic model resolution the gateway
// relies on.
package llm

import (
	"context"
	"errors"

	"lexigate/internal/prompt"
)

// Provider types
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Model describes an upstream model as reported by the provider.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Generation  bool   `json:"generation"`
}

// Client interface for LLM providers
type Client interface {
	TestConnection(ctx context.Context) error
	ListModels(ctx context.Context) ([]Model, error)
	Generate(ctx context.Context, model string, p prompt.Prompt) (string, error)
}

// NewClient factory function. baseURL is only honored by the OpenAI
// provider, where it points generation at a compatible endpoint.
func NewClient(provider, apiKey, baseURL string) (Client, error) {
	switch provider {
	case ProviderGoogle:
		return NewGoogleClient(apiKey), nil
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, baseURL), nil
	default:
		return nil, errors.New("unsupported provider: " + provider)
	}
}
