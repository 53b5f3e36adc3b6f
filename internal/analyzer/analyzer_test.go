package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func validRequest() *types.AnalysisRequest {
	return &types.AnalysisRequest{
		JobType: "Software Developer",
		Text: "Experienced JavaScript developer. Built React and Node.js " +
			"applications serving thousands of users. Wrote SQL queries and " +
			"reviewed code for the team.",
		Location: "",
		Skills: []types.SkillInput{
			{Name: "js", Level: "advanced"},
		},
		Education: []types.EducationEntry{
			{Degree: "BS Computer Science", Institution: "State University", Year: 2018},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Company: "Acme", Duration: "2019 - 2023", Description: "Built web services"},
		},
	}
}

func assertScoreBounds(t *testing.T, result *types.AnalysisResult) {
	t.Helper()
	for name, score := range map[string]int{
		"overall":     result.OverallScore,
		"skills":      result.SkillsAnalysis.SkillScores.Total,
		"confidence":  result.SkillsAnalysis.SkillScores.Confidence,
		"education":   result.EducationAnalysis.Score,
		"experience":  result.ExperienceScore,
		"readability": result.TextQuality.ReadabilityScore,
	} {
		assert.GreaterOrEqual(t, score, 0, "%s below zero", name)
		assert.LessOrEqual(t, score, 100, "%s above hundred", name)
	}
}

func TestAnalyze_NilRequest(t *testing.T) {
	a := New(nil)

	result, err := a.Analyze(context.Background(), nil)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotNil(t, result)
	assert.Zero(t, result.OverallScore)
	assert.NotNil(t, result.JobRecommendations)
	assert.NotNil(t, result.SkillsAnalysis.MatchedSkills)
}

func TestAnalyze_MissingJobType(t *testing.T) {
	a := New(nil)
	req := validRequest()
	req.JobType = ""

	result, err := a.Analyze(context.Background(), req)

	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.NotNil(t, result)
}

func TestAnalyze_MissingText(t *testing.T) {
	a := New(nil)
	req := validRequest()
	req.Text = ""

	result, err := a.Analyze(context.Background(), req)

	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	require.NotNil(t, result)
	assert.Zero(t, result.OverallScore)
	assert.NotNil(t, result.JobRecommendations)
}

func TestAnalyze_FullRequest(t *testing.T) {
	a := New(nil)

	result, err := a.Analyze(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assertScoreBounds(t, result)

	assert.Positive(t, result.OverallScore)
	assert.Positive(t, result.SkillsAnalysis.SkillScores.Total)
	assert.Positive(t, result.ExperienceScore)
	assert.Positive(t, result.EducationAnalysis.Score)

	matched := make([]string, 0, len(result.SkillsAnalysis.MatchedSkills))
	for _, s := range result.SkillsAnalysis.MatchedSkills {
		matched = append(matched, s.Name)
	}
	assert.Contains(t, matched, "JavaScript")

	assert.NotEmpty(t, result.JobRecommendations)
	assert.NotEmpty(t, result.CourseRecommendations)
	assert.NotEmpty(t, result.CertificationRecommendations)
}

func TestAnalyze_UnknownJobType(t *testing.T) {
	a := New(nil)
	req := validRequest()
	req.JobType = "Marine Biologist"

	result, err := a.Analyze(context.Background(), req)

	require.NoError(t, err)
	assertScoreBounds(t, result)
	assert.Zero(t, result.SkillsAnalysis.SkillScores.Total)
	// Education fields come from the best match; no match, no fields,
	// score stays zero.
	assert.Zero(t, result.EducationAnalysis.Score)

	require.Len(t, result.JobRecommendations, 1)
	assert.Equal(t, "Entry Level Position", result.JobRecommendations[0].JobTitle)
}

func TestAnalyze_TextOnlyRequest(t *testing.T) {
	a := New(nil)
	req := &types.AnalysisRequest{
		JobType: "Data Analyst",
		Text:    "Python and SQL for statistical analysis dashboards.",
	}

	result, err := a.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.Positive(t, result.SkillsAnalysis.SkillScores.Total)
	assert.Zero(t, result.ExperienceScore)
}

func TestAnalyze_EmptyOptionalFields(t *testing.T) {
	a := New(nil)
	req := &types.AnalysisRequest{JobType: "Software Developer", Text: "Recent graduate."}

	result, err := a.Analyze(context.Background(), req)

	require.NoError(t, err)
	assertScoreBounds(t, result)
	assert.NotNil(t, result.SkillsAnalysis.MissingSkills)
	assert.NotEmpty(t, result.JobRecommendations)
}

func TestExtractorFor_ScopedScanWithFullSweep(t *testing.T) {
	a := New(nil)
	ex := a.extractorFor("Data Analyst")

	names := func(skills []types.Skill) map[string]types.Skill {
		byName := make(map[string]types.Skill, len(skills))
		for _, s := range skills {
			byName[s.Name] = s
		}
		return byName
	}

	t.Run("sweep finds skills outside the industry dictionary", func(t *testing.T) {
		found := names(ex.Extract(context.Background(), "Cloud estate on AWS."))

		require.Contains(t, found, "AWS")
		assert.Equal(t, types.SourceDictionary, found["AWS"].Source)
	})

	t.Run("industry match keeps the scan scoped", func(t *testing.T) {
		found := names(ex.Extract(context.Background(), "Tableau and AWS."))

		require.Contains(t, found, "Tableau")
		assert.Equal(t, types.SourceKeyword, found["Tableau"].Source)
		assert.NotContains(t, found, "AWS")
	})
}

func TestValidationError_Unwrap(t *testing.T) {
	inner := assert.AnError
	ve := &ValidationError{Err: inner}

	assert.ErrorIs(t, ve, inner)
	assert.Contains(t, ve.Error(), "invalid analysis request")
}
