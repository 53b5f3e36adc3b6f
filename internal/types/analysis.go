package types

// SkillInput is a structured skill entry from the resume form.
type SkillInput struct {
	Name  string  `json:"name" validate:"required"`
	Level string  `json:"level,omitempty"`
	Years float64 `json:"years,omitempty" validate:"gte=0"`
}

// EducationEntry is a structured education record from the resume form.
type EducationEntry struct {
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Year        int     `json:"year,omitempty"`
	GPA         float64 `json:"gpa,omitempty"`
	Honors      string  `json:"honors,omitempty"`
}

// ExperienceEntry is a structured work-history record from the resume form.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// AnalysisRequest is the input snapshot for a single analysis call. The
// engine treats it as immutable; it is recomputed from the resume on each
// request rather than persisted as authoritative state.
type AnalysisRequest struct {
	Text       string            `json:"text" validate:"required"`
	JobType    string            `json:"job_type" validate:"required"`
	Location   string            `json:"location,omitempty"`
	Skills     []SkillInput      `json:"skills" validate:"dive"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Summary    string            `json:"summary"`
}

// TextQuality holds readability statistics for the resume body.
type TextQuality struct {
	ReadabilityScore int     `json:"readability_score"`
	SentenceCount    int     `json:"sentence_count"`
	WordCount        int     `json:"word_count"`
	AvgWordLength    float64 `json:"avg_word_length"`
}

// SkillScores holds the aggregate skill-match percentages.
type SkillScores struct {
	Total      int `json:"total"`
	Confidence int `json:"confidence"`
}

// SkillsAnalysis reports matched and missing skills for the target job.
type SkillsAnalysis struct {
	MatchedSkills []Skill         `json:"matched_skills"`
	MissingSkills []WeightedSkill `json:"missing_skills"`
	SkillScores   SkillScores     `json:"skill_scores"`
}

// EducationAnalysis reports education requirement coverage.
type EducationAnalysis struct {
	Score           int      `json:"score"`
	Matches         []string `json:"matches"`
	Recommendations []string `json:"recommendations"`
}

// JobRecommendation is a ranked job suggestion.
type JobRecommendation struct {
	JobTitle        string   `json:"job_title"`
	MatchPercentage int      `json:"match_percentage"`
	SalaryRange     string   `json:"salary_range"`
	Description     string   `json:"description"`
	MissingSkills   []string `json:"missing_skills"`
}

// Recommendation is a course or certification suggestion.
type Recommendation struct {
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
	Link        string `json:"link,omitempty"`
}

// AnalysisResult is the aggregate analysis output. All scores are
// integers clamped to [0,100]. Callers always receive a well-formed
// result; under total failure a canonical zeroed result is substituted.
type AnalysisResult struct {
	OverallScore                 int                 `json:"overall_score"`
	TextQuality                  TextQuality         `json:"text_quality"`
	SkillsAnalysis               SkillsAnalysis      `json:"skills_analysis"`
	EducationAnalysis            EducationAnalysis   `json:"education_analysis"`
	ExperienceScore              int                 `json:"experience_score"`
	JobRecommendations           []JobRecommendation `json:"job_recommendations"`
	CourseRecommendations        []Recommendation    `json:"course_recommendations"`
	CertificationRecommendations []Recommendation    `json:"certification_recommendations"`
}

// DefaultAnalysisResult returns the canonical zeroed result shape used
// when analysis cannot proceed. Slices are non-nil so JSON consumers
// never see null for required aggregate fields.
func DefaultAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		SkillsAnalysis: SkillsAnalysis{
			MatchedSkills: []Skill{},
			MissingSkills: []WeightedSkill{},
		},
		EducationAnalysis: EducationAnalysis{
			Matches:         []string{},
			Recommendations: []string{},
		},
		JobRecommendations:           []JobRecommendation{},
		CourseRecommendations:        []Recommendation{},
		CertificationRecommendations: []Recommendation{},
	}
}
