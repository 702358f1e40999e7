package llm

import (
	"fmt"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "openai", "anthropic", "gemini", "openrouter", "mock"
	Provider string `yaml:"provider"`

	Groq       OpenAIConfig    `yaml:"groq"`
	OpenAI     OpenAIConfig    `yaml:"openai"`
	Anthropic  AnthropicConfig `yaml:"anthropic"`
	Gemini     GeminiConfig    `yaml:"gemini"`
	OpenRouter OpenAIConfig    `yaml:"openrouter"`
	Retry      RetryConfig     `yaml:"retry"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // Default: "claude-haiku"
}

// OpenAIConfig configures any OpenAI-compatible chat completions endpoint.
// Groq and OpenRouter are reached through the same client with a different
// BaseURL.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"` // Optional. Empty means api.openai.com.

	// StructuredOutput sends the request schema as a json_schema response
	// format. Off by default: Groq-hosted Llama models reject it and the
	// prompt already carries the format.
	StructuredOutput bool `yaml:"structured_output"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gemini-flash"
	BaseURL string `yaml:"base_url"` // Empty: the public Gemini API.
}

// RetryConfig configures the bounded attempt loop.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"` // Zero: no delay between attempts.
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

const (
	DefaultGroqBaseURL       = "https://api.groq.com/openai/v1"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultGroqModel         = "llama-3.3-70b-versatile"
	DefaultMaxAttempts       = 5
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: OpenAIConfig{
			Model:   DefaultGroqModel,
			BaseURL: DefaultGroqBaseURL,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenAIConfig{
			Model:   "meta-llama/llama-3.3-70b-instruct",
			BaseURL: DefaultOpenRouterBaseURL,
		},
		Retry: RetryConfig{
			MaxAttempts: DefaultMaxAttempts,
			Multiplier:  2.0,
		},
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
