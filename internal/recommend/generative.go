package recommend

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// CourseGenerator supplies extra course candidates from a generative
// backend. Implementations must degrade to an empty slice on failure;
// enrichment never blocks or fails an analysis.
type CourseGenerator interface {
	GenerateCourses(ctx context.Context, jobType string, missing []types.WeightedSkill) []types.Recommendation
}

// BackendCourseGenerator generates course candidates through the shared
// generative service with model fallback.
type BackendCourseGenerator struct {
	service *llm.Service
}

// NewBackendCourseGenerator wraps a generative service.
func NewBackendCourseGenerator(service *llm.Service) *BackendCourseGenerator {
	return &BackendCourseGenerator{service: service}
}

// GenerateCourses asks the backend for course suggestions targeting the
// candidate's missing skills. Any failure, including template-noise
// output, yields an empty slice; the static pools cover the rest.
func (g *BackendCourseGenerator) GenerateCourses(ctx context.Context, jobType string, missing []types.WeightedSkill) []types.Recommendation {
	client, ok := g.service.Client()
	if !ok {
		return nil
	}

	out, err := llm.GenerateWithFallback(ctx, client, g.service.Config(), buildCoursePrompt(jobType, missing))
	if err != nil {
		log.Printf("course generation failed, using static pools: %v", err)
		return nil
	}
	return ParseGeneratedBlocks(out)
}

func buildCoursePrompt(jobType string, missing []types.WeightedSkill) string {
	names := make([]string, 0, len(missing))
	for _, ws := range missing {
		names = append(names, ws.Name)
	}
	gaps := "none"
	if len(names) > 0 {
		gaps = strings.Join(names, ", ")
	}
	template := prompts.MustGet("analysis.json", "generate-courses")
	return prompts.Format(template, map[string]string{
		"JobType": jobType,
		"Gaps":    gaps,
	})
}
