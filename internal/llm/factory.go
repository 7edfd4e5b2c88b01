package llm

import (
	"context"
	"fmt"

	"github.com/lernzeit/lernzeit/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// When the configuration names failover backends, they are tried in order
// behind the primary.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	names := append([]string{cfg.Provider}, cfg.Failover...)

	providers := make([]Provider, 0, len(names))
	for _, name := range names {
		base, err := newBaseProvider(ctx, cfg, name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, WithLogging(base, eventRepo))
	}

	var chained Provider
	if len(providers) == 1 {
		chained = providers[0]
	} else {
		failover, err := NewFailover(providers...)
		if err != nil {
			return nil, err
		}
		chained = failover
	}

	// Wrap with middleware: caller → retry → failover → logging → base
	return WithRetry(chained, cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config, name string) (Provider, error) {
	var base Provider
	var err error

	switch name {
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
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}
	return base, nil
}
