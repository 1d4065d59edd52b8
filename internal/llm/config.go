package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM backend used for question
// generation and subjective grading.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible endpoints
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

// RetryConfig shapes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envOr writes the value of the env var into dst if it is set.
func envOr(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv reads BCABUDDY_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOr("BCABUDDY_LLM_PROVIDER", &cfg.Provider)

	envOr("BCABUDDY_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	envOr("BCABUDDY_ANTHROPIC_MODEL", &cfg.Anthropic.Model)

	envOr("BCABUDDY_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	envOr("BCABUDDY_OPENAI_MODEL", &cfg.OpenAI.Model)
	envOr("BCABUDDY_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)

	envOr("BCABUDDY_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	envOr("BCABUDDY_GEMINI_MODEL", &cfg.Gemini.Model)

	envOr("BCABUDDY_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	envOr("BCABUDDY_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig probes the providers' conventional API key variables
// and picks the first one present, preferring Gemini, then OpenAI,
// Anthropic, OpenRouter. The second return is false when no key is set.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envKey   string
		provider string
		dst      func(cfg *Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.dst(&cfg) = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has the credentials it
// needs. The mock provider needs none.
func (c Config) Validate() error {
	required := map[string]struct {
		key    string
		envVar string
	}{
		"anthropic":  {c.Anthropic.APIKey, "BCABUDDY_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "BCABUDDY_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "BCABUDDY_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "BCABUDDY_OPENROUTER_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	req, ok := required[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if req.key == "" {
		return fmt.Errorf("%s is required for the %s provider", req.envVar, c.Provider)
	}
	return nil
}
