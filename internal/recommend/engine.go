// Package recommend ranks job titles and assembles course and
// certification suggestions from analysis results.
package recommend

import (
	"context"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/regional"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const maxJobRecommendations = 5

// Placeholder returned when the requested field has no catalog entries.
// Callers always get at least one recommendation, never an empty list.
const (
	placeholderTitle = "Entry Level Position"
	placeholderMatch = 30
)

// Engine produces ranked recommendations. The adjuster and course
// generator are optional; without them salaries stay unadjusted and the
// course list is fully static.
type Engine struct {
	adjuster  *regional.Adjuster
	generator CourseGenerator
}

// NewEngine creates a recommendation engine.
func NewEngine(adjuster *regional.Adjuster, generator CourseGenerator) *Engine {
	return &Engine{adjuster: adjuster, generator: generator}
}

// RankJobs scores every catalog entry for the field against the
// candidate's skills and returns the top matches, salary-adjusted for
// the candidate's location. Ties keep catalog order.
func (e *Engine) RankJobs(ctx context.Context, jobType string, skills []types.Skill, location string) []types.JobRecommendation {
	requirements := catalog.JobsForField(jobType)
	if len(requirements) == 0 {
		return []types.JobRecommendation{e.placeholder(ctx, location)}
	}

	recs := make([]types.JobRecommendation, 0, len(requirements))
	for _, req := range requirements {
		match := scoring.ScoreSkills(req, skills)
		missing := make([]string, 0, len(match.Missing))
		for _, ws := range match.Missing {
			missing = append(missing, ws.Name)
		}
		recs = append(recs, types.JobRecommendation{
			JobTitle:        req.Title,
			MatchPercentage: scoring.ClampScore(match.Total * 100),
			SalaryRange:     e.salaryRange(ctx, req.Salary, location),
			Description:     req.Description,
			MissingSkills:   missing,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	if len(recs) > maxJobRecommendations {
		recs = recs[:maxJobRecommendations]
	}
	return recs
}

// CourseRecommendations builds the course list, enriched by the
// generative backend when one is wired and responsive.
func (e *Engine) CourseRecommendations(ctx context.Context, jobType string, skills []types.Skill, missing []types.WeightedSkill) []types.Recommendation {
	var extras []types.Recommendation
	if e.generator != nil {
		extras = e.generator.GenerateCourses(ctx, jobType, missing)
	}
	return Courses(skills, missing, extras...)
}

// CertificationRecommendations builds the certification list.
func (e *Engine) CertificationRecommendations(skills []types.Skill, jobType string) []types.Recommendation {
	return Certifications(skills, jobType)
}

func (e *Engine) placeholder(ctx context.Context, location string) types.JobRecommendation {
	return types.JobRecommendation{
		JobTitle:        placeholderTitle,
		MatchPercentage: placeholderMatch,
		SalaryRange:     e.salaryRange(ctx, types.SalaryRange{Min: regional.DefaultSalaryMin, Max: regional.DefaultSalaryMax}, location),
		Description:     "General entry level position to build experience",
		MissingSkills:   []string{},
	}
}

func (e *Engine) salaryRange(ctx context.Context, salary types.SalaryRange, location string) string {
	formatted := regional.FormatSalaryRange(salary.Min, salary.Max)
	if e.adjuster == nil {
		return formatted
	}
	return e.adjuster.AdjustRange(ctx, formatted, location)
}
