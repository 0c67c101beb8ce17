package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the LLM provider. Provider is one of
// "anthropic", "openai", "gemini", "openrouter", or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // set for OpenRouter or other compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap fast model for each provider. Sentence
// evaluation and mnemonic generation do not need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays GREPREP_* environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	overlay("GREPREP_LLM_PROVIDER", &cfg.Provider)
	overlay("GREPREP_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	overlay("GREPREP_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	overlay("GREPREP_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	overlay("GREPREP_OPENAI_MODEL", &cfg.OpenAI.Model)
	overlay("GREPREP_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	overlay("GREPREP_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	overlay("GREPREP_GEMINI_MODEL", &cfg.Gemini.Model)
	overlay("GREPREP_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	overlay("GREPREP_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig probes the bare provider key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config
// for the first one set. ok is false when no key is found.
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

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	switch c.Provider {
	case "mock":
		return nil
	case "anthropic", "openai", "gemini", "openrouter":
		if keys[c.Provider] == "" {
			return fmt.Errorf("GREPREP_%s_API_KEY is required for the %s provider",
				strings.ToUpper(c.Provider), c.Provider)
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
