package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/prompts"
)

// candidateSchema validates the token-classification payload before any
// of it is merged into extraction results. Generative backends sometimes
// echo the prompt or return prose; structural validation rejects that
// before it reaches scoring.
const candidateSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "token": {"type": "string"},
      "score": {"type": "number", "minimum": 0, "maximum": 1}
    },
    "required": ["token", "score"]
  }
}`

var candidateSchemaLoader = gojsonschema.NewStringLoader(candidateSchema)

// SkillClassifier adapts the generative backend to the extractor's
// Augmenter interface. When the backend service is not ready the
// classifier reports an error and the extractor continues with its
// deterministic results.
type SkillClassifier struct {
	service *Service
}

// NewSkillClassifier wraps a backend service for skill classification.
func NewSkillClassifier(service *Service) *SkillClassifier {
	return &SkillClassifier{service: service}
}

// ClassifySkills asks the backend to label skill tokens in text with
// confidence scores. The response is schema-validated; malformed output
// is an error, never partial data.
func (c *SkillClassifier) ClassifySkills(ctx context.Context, text string) ([]extract.Candidate, error) {
	client, ok := c.service.Client()
	if !ok {
		return nil, fmt.Errorf("generative backend not ready")
	}

	callCtx, cancel := context.WithTimeout(ctx, c.service.Config().Timeout)
	defer cancel()

	prompt := buildClassifyPrompt(text)
	raw, err := client.GenerateJSON(callCtx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("skill classification call failed: %w", err)
	}

	payload, ok := ExtractJSONArray(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON array in classification response")
	}

	result, err := gojsonschema.Validate(candidateSchemaLoader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("classification payload rejected: %v", result.Errors())
	}

	var decoded []struct {
		Token string  `json:"token"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode classification payload: %w", err)
	}

	candidates := make([]extract.Candidate, 0, len(decoded))
	for _, d := range decoded {
		candidates = append(candidates, extract.Candidate{Token: d.Token, Score: d.Score})
	}
	return candidates, nil
}

func buildClassifyPrompt(text string) string {
	template := prompts.MustGet("analysis.json", "classify-skills")
	return prompts.Format(template, map[string]string{"Text": text})
}
