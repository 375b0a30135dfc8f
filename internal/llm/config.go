package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single advisor request, retries included.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey    string
	Model     string // Default: "claude-sonnet"
	FastModel string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey    string
	Model     string // Default: "gpt-4o"
	FastModel string // Default: "gpt-4o-mini"
	BaseURL   string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey    string
	Model     string // Default: "gemini-pro"
	FastModel string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey    string
	Model     string // Default: "google/gemini-2.5-pro"
	FastModel string // Default: "google/gemini-2.5-flash"
	BaseURL   string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model:     "claude-sonnet",
			FastModel: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-4o",
			FastModel: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model:     "gemini-pro",
			FastModel: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model:     "google/gemini-2.5-pro",
			FastModel: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "WELLLAB_LLM_PROVIDER")

	setString(&cfg.Anthropic.APIKey, "WELLLAB_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "WELLLAB_ANTHROPIC_MODEL")
	setString(&cfg.Anthropic.FastModel, "WELLLAB_ANTHROPIC_FAST_MODEL")

	setString(&cfg.OpenAI.APIKey, "WELLLAB_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "WELLLAB_OPENAI_MODEL")
	setString(&cfg.OpenAI.FastModel, "WELLLAB_OPENAI_FAST_MODEL")
	setString(&cfg.OpenAI.BaseURL, "WELLLAB_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "WELLLAB_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "WELLLAB_GEMINI_MODEL")
	setString(&cfg.Gemini.FastModel, "WELLLAB_GEMINI_FAST_MODEL")

	setString(&cfg.OpenRouter.APIKey, "WELLLAB_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "WELLLAB_OPENROUTER_MODEL")
	setString(&cfg.OpenRouter.FastModel, "WELLLAB_OPENROUTER_FAST_MODEL")

	if v := os.Getenv("WELLLAB_LLM_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}
	if v := os.Getenv("WELLLAB_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("WELLLAB_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("WELLLAB_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("WELLLAB_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("WELLLAB_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
