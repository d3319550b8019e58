package llm

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and trace-logging middleware.
func NewProvider(ctx context.Context, cfg Config, traces store.TraceRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> retry -> logging -> base, so every
	// individual attempt is traced.
	logged := WithLogging(base, traces)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
