package extract

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// skillAliases maps common skill name variants to canonical names, so
// form input and extracted text agree on one spelling.
var skillAliases = map[string]string{
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"golang":     "Go",
	"go lang":    "Go",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue",
	"vue.js":     "Vue",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"node.js":    "Node.js",
	"postgres":   "PostgreSQL",
	"py":         "Python",
	"python":     "Python",
}

// NormalizeSkillName returns the canonical form of a skill name.
func NormalizeSkillName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := skillAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	// Single all-lowercase words get an initial capital.
	if trimmed == strings.ToLower(trimmed) && !strings.Contains(trimmed, " ") {
		return strings.ToUpper(trimmed[:1]) + trimmed[1:]
	}
	return trimmed
}

// levelProficiency maps free-form form levels onto the proficiency enum.
var levelProficiency = map[string]types.Proficiency{
	"beginner":     types.ProficiencyBeginner,
	"basic":        types.ProficiencyBeginner,
	"intermediate": types.ProficiencyIntermediate,
	"advanced":     types.ProficiencyAdvanced,
	"proficient":   types.ProficiencyAdvanced,
	"expert":       types.ProficiencyExpert,
	"master":       types.ProficiencyMaster,
}

// FromInput normalizes a structured form skill into the tagged Skill
// record used by the core. Unrecognized levels default to intermediate.
func FromInput(in types.SkillInput) types.Skill {
	prof, ok := levelProficiency[strings.ToLower(strings.TrimSpace(in.Level))]
	if !ok {
		prof = types.ProficiencyIntermediate
	}
	return types.Skill{
		Name:        NormalizeSkillName(in.Name),
		Proficiency: prof,
		Source:      types.SourceBasic,
	}
}

// MergeSkills combines two skill sets, deduplicating by lowercased name
// with source precedence deciding conflicts.
func MergeSkills(sets ...[]types.Skill) []types.Skill {
	found := make(map[string]types.Skill)
	for _, set := range sets {
		for _, s := range set {
			merge(found, s)
		}
	}
	out := make([]types.Skill, 0, len(found))
	for _, s := range found {
		out = append(out, s)
	}
	return out
}
