// Package analyzer orchestrates a full resume analysis: extraction,
// scoring, and recommendation assembly.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ValidationError marks a request that failed input validation. The
// caller still receives the canonical zeroed result alongside it so
// rendering never breaks on missing fields.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid analysis request: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Analyzer runs the full analysis flow. It is stateless per request;
// the engine and extraction options it holds are safe for concurrent use.
type Analyzer struct {
	extractOpts []extract.Option
	sweep       []string
	engine      *recommend.Engine
	validate    *validator.Validate
}

// New creates an analyzer. Extraction options (augmenter, threshold)
// apply to every request; a nil engine gets an offline default so
// analysis always works without external backends.
func New(engine *recommend.Engine, extractOpts ...extract.Option) *Analyzer {
	if engine == nil {
		engine = recommend.NewEngine(nil, nil)
	}
	return &Analyzer{
		extractOpts: extractOpts,
		sweep:       catalog.AllSkills(),
		engine:      engine,
		validate:    validator.New(),
	}
}

// extractorFor builds the extractor for one request: the primary scan
// uses the dictionary for the job field's industry, and the empty-result
// fallback sweeps every known skill.
func (a *Analyzer) extractorFor(jobType string) *extract.Extractor {
	opts := append([]extract.Option{extract.WithSweepDictionary(a.sweep)}, a.extractOpts...)
	return extract.New(catalog.SkillsForField(jobType), opts...)
}

// Analyze produces a complete analysis for one request. The returned
// result is always well-formed: on validation failure it is the
// canonical zeroed shape, paired with a ValidationError.
func (a *Analyzer) Analyze(ctx context.Context, req *types.AnalysisRequest) (*types.AnalysisResult, error) {
	if req == nil {
		return types.DefaultAnalysisResult(), &ValidationError{Err: fmt.Errorf("request is nil")}
	}
	if err := a.validate.Struct(req); err != nil {
		return types.DefaultAnalysisResult(), &ValidationError{Err: err}
	}

	skills := a.collectSkills(ctx, req)

	match, eduFields := a.bestMatch(req.JobType, skills)
	quality := scoring.AnalyzeTextQuality(req.Text)
	education := scoring.ScoreEducation(eduFields, req.Education)
	experience := scoring.ScoreExperience(req.Experience)

	result := types.DefaultAnalysisResult()
	result.TextQuality = quality
	result.ExperienceScore = scoring.ClampScore(experience)
	result.SkillsAnalysis = types.SkillsAnalysis{
		MatchedSkills: match.Matched,
		MissingSkills: match.Missing,
		SkillScores: types.SkillScores{
			Total:      scoring.ClampScore(match.Total * 100),
			Confidence: scoring.ClampScore(match.Confidence * 100),
		},
	}
	result.EducationAnalysis = types.EducationAnalysis{
		Score:           scoring.ClampScore(education.Score),
		Matches:         education.Matches,
		Recommendations: education.Recommendations,
	}
	result.OverallScore = scoring.OverallScore(
		match.Total, float64(quality.ReadabilityScore), education.Score, experience)

	result.JobRecommendations = a.engine.RankJobs(ctx, req.JobType, skills, req.Location)
	result.CourseRecommendations = a.engine.CourseRecommendations(ctx, req.JobType, skills, match.Missing)
	result.CertificationRecommendations = a.engine.CertificationRecommendations(skills, req.JobType)

	return result, nil
}

// collectSkills merges declared form skills with skills extracted from
// the combined resume text. Extracted evidence outranks bare form
// entries for the same skill.
func (a *Analyzer) collectSkills(ctx context.Context, req *types.AnalysisRequest) []types.Skill {
	declared := make([]types.Skill, 0, len(req.Skills))
	for _, in := range req.Skills {
		declared = append(declared, extract.FromInput(in))
	}

	combined := combineText(req)
	var extracted []types.Skill
	if strings.TrimSpace(combined) != "" {
		extracted = a.extractorFor(req.JobType).Extract(ctx, combined)
	}

	return extract.MergeSkills(declared, extracted)
}

// bestMatch scores the candidate against every catalog entry for the
// field and keeps the strongest, whose education fields drive the
// education score. A field with no entries yields an empty match.
func (a *Analyzer) bestMatch(jobType string, skills []types.Skill) (scoring.SkillMatch, []string) {
	requirements := catalog.JobsForField(jobType)
	if len(requirements) == 0 {
		return scoring.SkillMatch{
			Matched: []types.Skill{},
			Missing: []types.WeightedSkill{},
		}, nil
	}

	best := scoring.ScoreSkills(requirements[0], skills)
	fields := requirements[0].EducationFields
	for _, req := range requirements[1:] {
		match := scoring.ScoreSkills(req, skills)
		if match.Total > best.Total {
			best = match
			fields = req.EducationFields
		}
	}
	return best, fields
}

func combineText(req *types.AnalysisRequest) string {
	var parts []string
	if req.Summary != "" {
		parts = append(parts, req.Summary)
	}
	if req.Text != "" {
		parts = append(parts, req.Text)
	}
	for _, e := range req.Education {
		parts = append(parts, strings.TrimSpace(e.Degree+" "+e.Institution))
	}
	for _, e := range req.Experience {
		parts = append(parts, strings.TrimSpace(e.Title+" "+e.Description))
	}
	return strings.Join(parts, "\n")
}
