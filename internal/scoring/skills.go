// Package scoring computes the quantitative scores of a resume analysis:
// skill match, education match, experience, text quality, and the
// weighted overall score.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weighting between required and preferred skill matches.
const (
	requiredWeight  = 0.70
	preferredWeight = 0.30
)

// SkillMatch is the result of scoring a candidate skill set against one
// job requirement.
type SkillMatch struct {
	// Total is the combined match score in [0,1].
	Total float64
	// Matched lists candidate skills that satisfied a requirement.
	Matched []types.Skill
	// Missing lists unmatched requirement skills, required ones first
	// since they matter more to the candidate.
	Missing []types.WeightedSkill
	// Confidence is the fraction of requirement skills matched, in [0,1].
	Confidence float64
}

// Satisfies reports whether a candidate skill fulfils a requirement
// skill. The comparison is case-insensitive and true when either string
// contains the other. This deliberately admits partial overlaps like
// "JS" against "JavaScript" and the occasional false positive such as
// "Java" against "JavaScript"; accepted heuristic, not a bug.
func Satisfies(candidate, requirement string) bool {
	c := strings.ToLower(candidate)
	r := strings.ToLower(requirement)
	if c == "" || r == "" {
		return false
	}
	return strings.Contains(c, r) || strings.Contains(r, c)
}

// ScoreSkills scores candidate skills against one job requirement.
// requiredScore = sum(importance/10 over matched required) / #required * 0.70
// preferredScore = sum(importance/10 over matched preferred) / #preferred * 0.30
// Total = min(1, requiredScore + preferredScore).
func ScoreSkills(req types.JobRequirement, skills []types.Skill) SkillMatch {
	match := SkillMatch{
		Matched: []types.Skill{},
		Missing: []types.WeightedSkill{},
	}

	matchedSet := make(map[string]bool)
	matchedCount := 0

	scoreGroup := func(group []types.WeightedSkill) float64 {
		sum := 0.0
		for _, ws := range group {
			satisfied := false
			for _, s := range skills {
				if Satisfies(s.Name, ws.Name) {
					satisfied = true
					key := strings.ToLower(s.Name)
					if !matchedSet[key] {
						matchedSet[key] = true
						match.Matched = append(match.Matched, s)
					}
				}
			}
			if satisfied {
				sum += float64(ws.Importance) / 10
				matchedCount++
			} else {
				match.Missing = append(match.Missing, ws)
			}
		}
		return sum
	}

	// Required first so missing required skills surface before preferred.
	requiredSum := scoreGroup(req.RequiredSkills)
	preferredSum := scoreGroup(req.PreferredSkills)

	requiredScore := requiredSum / float64(max(1, len(req.RequiredSkills))) * requiredWeight
	preferredScore := preferredSum / float64(max(1, len(req.PreferredSkills))) * preferredWeight

	match.Total = requiredScore + preferredScore
	if match.Total > 1 {
		match.Total = 1
	}

	totalReqs := len(req.RequiredSkills) + len(req.PreferredSkills)
	if totalReqs > 0 {
		match.Confidence = float64(matchedCount) / float64(totalReqs)
	}

	return match
}
