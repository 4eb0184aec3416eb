package ai

import (
	"context"
	"fmt"
)

// Provider defines the contract for upstream LLM services. Every provider takes
// one prompt and returns the raw text of the model's reply; parsing the reply is
// the caller's job, not the adapter's.
type Provider interface {
	// Invoke performs a single generation round trip. It returns the raw reply
	// text or a *ProviderError describing the upstream failure.
	Invoke(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identity, e.g. "gemini".
	Name() string
}

// Identity names the provider chosen at startup. It is set once and read-only
// for the rest of the process lifetime.
type Identity string

const (
	IdentityNone      Identity = "none"
	IdentityGemini    Identity = "gemini"
	IdentityOpenAI    Identity = "openai"
	IdentityAnthropic Identity = "anthropic"
)

// ProviderError carries the upstream status and message of a failed invocation.
type ProviderError struct {
	Provider string
	Status   int // HTTP status when known, 0 otherwise
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream status %d: %s", e.Provider, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }
