// Package ai abstracts the machine translation backends.
package ai

import (
	"context"
	"fmt"
)

// Known provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Provider produces a completion for a prompt. Implementations wrap one
// vendor SDK.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete generates a response for the prompt without streaming.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// New builds the named provider.
func New(provider, apiKey, baseURL, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("provider %q: missing API key", provider)
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(apiKey, baseURL, model), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(apiKey, baseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
