// Package llm talks to hosted text-generation APIs. Each Generator turns one
// prompt into one completion with a single HTTP round trip and no retries.
package llm

import (
	"context"
	"errors"
	"fmt"
	"github.com/codesync/autocomplete-server/config"
	"github.com/go-resty/resty/v2"
)

// maxOutputTokens caps the completion length; callers only want one line.
const maxOutputTokens = 128

// ErrNoCompletion is returned when the upstream answered successfully but the
// body carries no candidate text.
var ErrNoCompletion = errors.New("model returned no completion")

// Generator submits a prompt and returns the raw completion text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the Generator selected by cfg.Provider.
func New(cfg *config.Config) (Generator, error) {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.UpstreamTimeout).
		SetHeader("Content-Type", "application/json")

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGemini(client, cfg.APIKey, cfg.Model), nil
	case config.ProviderOpenAI:
		return NewOpenAI(client, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
