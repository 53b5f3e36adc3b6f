package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// EducationMatch is the result of scoring education entries against a
// job's education fields.
type EducationMatch struct {
	// Score is matched fields / total fields * 100, in [0,100].
	Score float64
	// Matches lists requirement fields satisfied by some entry.
	Matches []string
	// Recommendations lists requirement fields the candidate lacks.
	Recommendations []string
}

// ScoreEducation matches a job's education fields against the candidate's
// entries. A field counts as matched when it is a substring of, or
// contains, the "degree institution" string of any entry
// (case-insensitive). A requirement with zero education fields scores 0,
// not 100; that mirrors upstream behavior and is intentional.
func ScoreEducation(fields []string, entries []types.EducationEntry) EducationMatch {
	match := EducationMatch{
		Matches:         []string{},
		Recommendations: []string{},
	}
	if len(fields) == 0 {
		return match
	}

	for _, field := range fields {
		fieldLower := strings.ToLower(field)
		satisfied := false
		for _, e := range entries {
			entry := strings.ToLower(strings.TrimSpace(e.Degree + " " + e.Institution))
			if entry == "" {
				continue
			}
			if strings.Contains(entry, fieldLower) || strings.Contains(fieldLower, entry) {
				satisfied = true
				break
			}
		}
		if satisfied {
			match.Matches = append(match.Matches, field)
		} else {
			match.Recommendations = append(match.Recommendations, field)
		}
	}

	match.Score = float64(len(match.Matches)) / float64(len(fields)) * 100
	return match
}
