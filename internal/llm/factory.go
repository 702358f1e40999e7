package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lecturely/internal/logger"
)

// NewProvider creates a Provider from configuration, wrapped with retry,
// validation and logging middleware (see Chain).
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return Chain(base, cfg.Retry, log), nil
}

// Chain assembles the attempt pipeline:
// caller → retry → logging → validation → base.
// Each retry iteration is one full attempt: call, parse, check. Logging sits
// above validation so a reply that fails to parse is logged as a failure.
func Chain(base Provider, retry RetryConfig, log *logger.Logger) Provider {
	validated := WithValidation(base)
	logged := WithLogging(validated, log)
	return WithRetry(logged, retry)
}
