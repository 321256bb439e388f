package ai

import (
	"context"

	"github.com/jvokurka/tripbook/internal/config"
)

// NewFromConfig returns the first configured naming backend, preferring
// OpenAI. Returns nil when no backend is configured; album naming is then
// disabled and callers keep the deterministic names.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.OpenAI.Token != "" {
		return NewOpenAIProvider(cfg.OpenAI.Token), nil
	}
	if cfg.Gemini.APIKey != "" {
		return NewGeminiProvider(ctx, cfg.Gemini.APIKey)
	}
	return nil, nil
}
