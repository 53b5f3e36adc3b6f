package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerateWithFallback runs a prompt against the ordered fallback-model
// list. Each call is bounded by the configured timeout. On failure or an
// empty payload it continues to the next model; when a whole pass fails
// it sleeps the fixed delay and sweeps the list again, up to RetryPasses
// passes. Retries are sequential to avoid amplifying load on a
// struggling backend. Only full exhaustion surfaces an error; this layer
// never fabricates data.
func GenerateWithFallback(ctx context.Context, client Client, cfg *Config, prompt string) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	models := cfg.FallbackModels
	if len(models) == 0 {
		models = []string{cfg.GetModel(TierStandard)}
	}

	var lastErr error
	for pass := 0; pass < cfg.RetryPasses; pass++ {
		if pass > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(cfg.RetryDelay):
			}
		}

		for _, model := range models {
			callCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			out, err := client.GenerateWithModel(callCtx, model, prompt)
			cancel()
			if err != nil {
				lastErr = fmt.Errorf("model %s: %w", model, err)
				continue
			}
			if strings.TrimSpace(out) == "" {
				lastErr = fmt.Errorf("model %s: empty payload", model)
				continue
			}
			return out, nil
		}
	}

	return "", fmt.Errorf("all models failed after %d passes: %w", cfg.RetryPasses, lastErr)
}
