package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	// Model ids are vendor-prefixed and passed through unchanged.
	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		FastModel: cfg.FastModel,
		BaseURL:   baseURL,
	}, nil)

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
