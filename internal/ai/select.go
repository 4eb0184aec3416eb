package ai

import (
	"context"

	"go.uber.org/zap"
)

// Credentials carries the upstream API keys found in the environment. An empty
// key means the provider is not configured.
type Credentials struct {
	GeminiKey    string
	OpenAIKey    string
	AnthropicKey string
}

type candidate struct {
	identity Identity
	key      string
	build    func(ctx context.Context, key string) (Provider, error)
}

// Select picks the active provider. Candidates are tried in a fixed priority
// order and the first one whose key is present and whose constructor succeeds
// wins. A constructor failure falls through to the next candidate rather than
// aborting startup. When nothing is configured the service runs in degraded
// mode and every itinerary comes from the static fallback.
//
// The result is decided once at startup and never changes for the process
// lifetime; switching providers requires a restart.
func Select(ctx context.Context, creds Credentials, log *zap.Logger) (Provider, Identity) {
	candidates := []candidate{
		{IdentityGemini, creds.GeminiKey, func(ctx context.Context, key string) (Provider, error) {
			return NewGeminiProvider(ctx, key)
		}},
		{IdentityOpenAI, creds.OpenAIKey, func(_ context.Context, key string) (Provider, error) {
			return NewOpenAIProvider(key)
		}},
		{IdentityAnthropic, creds.AnthropicKey, func(_ context.Context, key string) (Provider, error) {
			return NewAnthropicProvider(key)
		}},
	}
	return selectFrom(ctx, candidates, log)
}

func selectFrom(ctx context.Context, candidates []candidate, log *zap.Logger) (Provider, Identity) {
	for _, c := range candidates {
		if c.key == "" {
			continue
		}
		p, err := c.build(ctx, c.key)
		if err != nil {
			log.Warn("provider construction failed, trying next",
				zap.String("provider", string(c.identity)), zap.Error(err))
			continue
		}
		log.Info("ai provider selected", zap.String("provider", string(c.identity)))
		return p, c.identity
	}
	log.Warn("no ai provider configured, itineraries will use the static fallback")
	return nil, IdentityNone
}
