package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey is returned when a hosted provider is used without a key.
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrNoContent is returned when a provider answers without any text.
	ErrNoContent = errors.New("no content in response")
)

const (
	openRouterURL = "https://openrouter.ai/api/v1"
	ollamaURL     = "http://localhost:11434/v1"
)

// Agent is the interface every text-generation backend implements.
type Agent interface {
	// Send sends a prompt and returns the generated text.
	Send(ctx context.Context, prompt string) (string, error)
}

// ModelLister is implemented by agents that can enumerate the models their
// provider offers for text generation.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// NewAgent is a factory function that returns an Agent based on the provider.
// baseURL overrides the provider's default endpoint for OpenAI-compatible
// providers and is ignored otherwise.
func NewAgent(provider, apiKey, model, baseURL string) (Agent, error) {
	if provider == "openrouter" {
		model = openRouterModel(model)
	}

	switch provider {
	case "gemini":
		return NewGeminiClient(apiKey, model), nil
	case "openai":
		return NewOpenAIClient(apiKey, model, baseURL), nil
	case "openrouter":
		if baseURL == "" {
			baseURL = openRouterURL
		}
		return NewOpenAIClient(apiKey, model, baseURL), nil
	case "ollama":
		if baseURL == "" {
			baseURL = ollamaURL
		}
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, model, baseURL), nil
	case "mock":
		return NewMockAgent(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// openRouterModel adds the vendor prefix OpenRouter expects to bare model names.
func openRouterModel(model string) string {
	if strings.Contains(model, "/") {
		return model
	}
	switch {
	case strings.HasPrefix(model, "gemini-"):
		return "google/" + model
	case strings.HasPrefix(model, "gpt-"):
		return "openai/" + model
	case strings.HasPrefix(model, "claude-"):
		return "anthropic/" + model
	case strings.HasPrefix(model, "llama-"):
		return "meta-llama/" + model
	case strings.HasPrefix(model, "mistral-"), strings.HasPrefix(model, "mixtral-"):
		return "mistralai/" + model
	}
	return model
}
