package recommend

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// predominantLevel maps the candidate's strongest proficiency band to a
// course tier.
func predominantLevel(skills []types.Skill) string {
	advanced, intermediate := 0, 0
	for _, s := range skills {
		switch s.Proficiency {
		case types.ProficiencyAdvanced, types.ProficiencyExpert, types.ProficiencyMaster:
			advanced++
		case types.ProficiencyIntermediate:
			intermediate++
		}
	}
	switch {
	case advanced > 0 && advanced >= intermediate:
		return "Advanced"
	case intermediate > 0:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// Courses builds the course recommendation list. Courses targeting a
// missing skill's keyword family are injected first; the remainder of
// the list comes from the level-matched pool plus any extra candidates
// (generative enrichment) under the provider diversity rule. The result
// never exceeds five entries.
func Courses(skills []types.Skill, missing []types.WeightedSkill, extras ...types.Recommendation) []types.Recommendation {
	used := make(map[string]bool)
	var picked []types.Recommendation

	for _, family := range catalog.GapFamilies() {
		if len(picked) >= maxRecommendations {
			break
		}
		if !missingMentions(missing, family) {
			continue
		}
		course, ok := catalog.GapCourseFor(family)
		if !ok {
			continue
		}
		used[strings.ToLower(course.Provider)] = true
		picked = append(picked, course)
	}

	levelPool := catalog.CoursesForLevel(predominantLevel(skills))
	pool := make([]types.Recommendation, 0, len(levelPool)+len(extras))
	pool = append(pool, levelPool...)
	pool = append(pool, extras...)
	remaining := maxRecommendations - len(picked)
	minNeeded := minRecommendations - len(picked)
	if minNeeded < 0 {
		minNeeded = 0
	}
	if remaining > 0 {
		picked = append(picked, selectDiverse(pool, minNeeded, remaining, used)...)
	}
	return picked
}

func missingMentions(missing []types.WeightedSkill, family string) bool {
	for _, ws := range missing {
		if strings.Contains(strings.ToLower(ws.Name), family) {
			return true
		}
	}
	return false
}
