package llm

import (
	"context"
)

// Provider is the interface for all text-generation providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// Generation parameters shared by every section call. The report format
// contract relies on long outputs, so the token budget is large.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 5500
)

func optString(options map[string]interface{}, key, def string) string {
	if val, ok := options[key].(string); ok && val != "" {
		return val
	}
	return def
}
