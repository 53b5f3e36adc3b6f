// Package types defines the shared data model for resume analysis.
package types

// Proficiency is a discrete skill-strength label inferred from textual context.
type Proficiency string

// Proficiency levels, ordered weakest to strongest.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
	ProficiencyMaster       Proficiency = "master"
)

// SkillSource records which extraction strategy produced a skill.
type SkillSource string

// Skill sources, ordered by increasing precedence when merging duplicates.
const (
	SourceBasic      SkillSource = "basic"
	SourceDictionary SkillSource = "dictionary"
	SourceKeyword    SkillSource = "keyword"
	SourceAI         SkillSource = "ai"
)

// sourcePriority maps sources to merge precedence. Higher wins.
var sourcePriority = map[SkillSource]int{
	SourceBasic:      1,
	SourceDictionary: 2,
	SourceKeyword:    3,
	SourceAI:         4,
}

// SourcePriority returns the merge precedence for a skill source.
// Unknown sources rank below every known one.
func SourcePriority(s SkillSource) int {
	return sourcePriority[s]
}

// Skill is a single extracted or declared candidate skill.
type Skill struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
	Source      SkillSource `json:"source"`
	// Confidence is only set for AI-sourced skills (0-1).
	Confidence float64 `json:"confidence,omitempty"`
}
