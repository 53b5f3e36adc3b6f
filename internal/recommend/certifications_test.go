package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestCertifications_BeginnerLadder(t *testing.T) {
	certs := Certifications(nil, "Software Developer")

	require.NotEmpty(t, certs)
	titles := make([]string, 0, len(certs))
	for _, c := range certs {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "AWS Cloud Practitioner")
	assert.NotContains(t, titles, "Certified Kubernetes Administrator")
	assert.GreaterOrEqual(t, len(certs), 3)
}

func TestCertifications_IntermediateLadder(t *testing.T) {
	skills := []types.Skill{{Name: "Go", Proficiency: types.ProficiencyIntermediate}}

	certs := Certifications(skills, "Software Developer")

	assert.Equal(t, "AWS Certified Developer Associate", certs[0].Title)
}

func TestCertifications_AdvancedLadder(t *testing.T) {
	skills := []types.Skill{{Name: "Go", Proficiency: types.ProficiencyExpert}}

	certs := Certifications(skills, "Software Developer")

	titles := make([]string, 0, len(certs))
	for _, c := range certs {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "AWS Certified Solutions Architect Professional")
	assert.Contains(t, titles, "Google Cloud Professional Architect")
}

func TestCertifications_DevOpsTrack(t *testing.T) {
	skills := []types.Skill{{Name: "Docker", Proficiency: types.ProficiencyAdvanced}}

	certs := Certifications(skills, "DevOps Engineer")

	titles := make([]string, 0, len(certs))
	for _, c := range certs {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "Certified Kubernetes Administrator")
}

func TestCertifications_DevOpsTrackBeginner(t *testing.T) {
	certs := Certifications(nil, "devops engineer")

	titles := make([]string, 0, len(certs))
	for _, c := range certs {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "Docker Certified Associate")
}

func TestCertifications_ProviderDiversity(t *testing.T) {
	certs := Certifications(nil, "Software Developer")

	seen := make(map[string]bool)
	for _, c := range certs {
		assert.False(t, seen[c.Provider], "provider %s repeated", c.Provider)
		seen[c.Provider] = true
	}
}

func TestCertifications_WithinBounds(t *testing.T) {
	certs := Certifications([]types.Skill{{Proficiency: types.ProficiencyExpert}}, "DevOps Engineer")

	assert.GreaterOrEqual(t, len(certs), 3)
	assert.LessOrEqual(t, len(certs), 5)
}
