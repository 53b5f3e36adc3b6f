package recommend

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Certifications builds the certification recommendation list: one
// cloud-ladder entry matched to the candidate's level, a container-track
// entry for DevOps-flavored job types, then cross-cloud fillers under
// the provider diversity rule up to the list bounds.
func Certifications(skills []types.Skill, jobType string) []types.Recommendation {
	hasAdvanced, hasIntermediate := false, false
	for _, s := range skills {
		switch s.Proficiency {
		case types.ProficiencyAdvanced, types.ProficiencyExpert, types.ProficiencyMaster:
			hasAdvanced = true
		case types.ProficiencyIntermediate:
			hasIntermediate = true
		}
	}

	candidates := []types.Recommendation{catalog.CloudCertForLevel(hasAdvanced, hasIntermediate)}
	if strings.Contains(strings.ToLower(jobType), "devops") {
		candidates = append(candidates, catalog.DevOpsCertForLevel(hasAdvanced))
	}
	candidates = append(candidates, catalog.FillerCerts(hasAdvanced)...)

	return selectDiverse(candidates, minRecommendations, maxRecommendations, nil)
}
