// Package llm provides the generative backend used for skill extraction
// augmentation and recommendation enrichment. Failure of this backend
// must never fail an analysis; callers fall back to deterministic paths.
package llm

import "time"

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: token classification, extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for structured generation: recommendation blocks.
	TierStandard ModelTier = "standard"
)

// Provider represents a generative backend provider.
type Provider string

// ProviderGemini is the Google Gemini provider.
const ProviderGemini Provider = "gemini"

// Config holds model selection and the retry policy for external calls.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// FallbackModels is the ordered list tried by GenerateWithFallback.
	FallbackModels []string
	// Timeout bounds every individual external call so a hanging backend
	// degrades to the deterministic path instead of blocking analysis.
	Timeout time.Duration
	// RetryPasses is the number of full sweeps over FallbackModels.
	RetryPasses int
	// RetryDelay is the fixed sleep between sweeps.
	RetryDelay time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		FallbackModels: []string{
			"gemini-2.5-flash",
			"gemini-2.5-flash-lite",
			"gemini-2.0-flash",
		},
		Timeout:     15 * time.Second,
		RetryPasses: 3,
		RetryDelay:  2 * time.Second,
	}
}

// GetModel returns the model name for a tier, falling back from standard
// to lite when a tier is unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
