package llm

import (
	"context"
	"fmt"

	"github.com/eduforge/eduforge/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// event logging middleware.
func NewProvider(ctx context.Context, cfg Config, rec store.Recorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Retry wraps logging so each attempt is recorded individually.
	wrapped := Provider(base)
	if rec != nil {
		wrapped = WithLogging(wrapped, rec)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from EDUFORGE_* env vars, falling back
// to discovery of standard API key variables.
func NewProviderFromEnv(ctx context.Context, rec store.Recorder) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, rec)
}
