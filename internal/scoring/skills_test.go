package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func fullStackRequirement() types.JobRequirement {
	return types.JobRequirement{
		Title: "Full Stack Developer",
		RequiredSkills: []types.WeightedSkill{
			{Name: "JavaScript", Importance: 9},
			{Name: "React", Importance: 8},
			{Name: "Node.js", Importance: 8},
			{Name: "SQL", Importance: 7},
		},
		PreferredSkills: []types.WeightedSkill{
			{Name: "TypeScript", Importance: 7},
			{Name: "MongoDB", Importance: 6},
			{Name: "AWS", Importance: 6},
		},
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		requirement string
		want        bool
	}{
		{"exact match", "React", "React", true},
		{"case insensitive", "react", "REACT", true},
		{"candidate contains requirement", "React.js", "React", true},
		{"requirement contains candidate", "JS", "Node.js", true},
		{"java matches javascript", "Java", "JavaScript", true},
		{"no overlap", "Python", "React", false},
		{"empty candidate", "", "React", false},
		{"empty requirement", "React", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Satisfies(tt.candidate, tt.requirement))
		})
	}
}

func TestScoreSkills_PartialMatch(t *testing.T) {
	skills := []types.Skill{
		{Name: "JavaScript"},
		{Name: "React"},
		{Name: "Node.js"},
	}

	match := ScoreSkills(fullStackRequirement(), skills)

	// Matched required: (0.9 + 0.8 + 0.8) / 4 * 0.70. No preferred hits.
	assert.InDelta(t, 0.4375, match.Total, 1e-9)
	assert.Len(t, match.Matched, 3)
	assert.InDelta(t, 3.0/7.0, match.Confidence, 1e-9)
}

func TestScoreSkills_MissingListsRequiredFirst(t *testing.T) {
	skills := []types.Skill{
		{Name: "JavaScript"},
		{Name: "React"},
		{Name: "Node.js"},
	}

	match := ScoreSkills(fullStackRequirement(), skills)

	require.Len(t, match.Missing, 4)
	assert.Equal(t, "SQL", match.Missing[0].Name)
	assert.Equal(t, "TypeScript", match.Missing[1].Name)
	assert.Equal(t, "MongoDB", match.Missing[2].Name)
	assert.Equal(t, "AWS", match.Missing[3].Name)
}

func TestScoreSkills_MoreMatchesScoreHigher(t *testing.T) {
	base := []types.Skill{
		{Name: "JavaScript"},
		{Name: "React"},
	}
	withMore := append(append([]types.Skill{}, base...), types.Skill{Name: "SQL"})

	req := fullStackRequirement()
	assert.Greater(t, ScoreSkills(req, withMore).Total, ScoreSkills(req, base).Total)
}

func TestScoreSkills_EmptySkills(t *testing.T) {
	match := ScoreSkills(fullStackRequirement(), nil)

	assert.Zero(t, match.Total)
	assert.Zero(t, match.Confidence)
	assert.Empty(t, match.Matched)
	assert.Len(t, match.Missing, 7)
	assert.NotNil(t, match.Matched)
}

func TestScoreSkills_PerfectMatchCapsAtOne(t *testing.T) {
	req := types.JobRequirement{
		RequiredSkills:  []types.WeightedSkill{{Name: "Go", Importance: 10}},
		PreferredSkills: []types.WeightedSkill{{Name: "Docker", Importance: 10}},
	}
	skills := []types.Skill{{Name: "Go"}, {Name: "Docker"}}

	match := ScoreSkills(req, skills)

	assert.InDelta(t, 1.0, match.Total, 1e-9)
	assert.InDelta(t, 1.0, match.Confidence, 1e-9)
}

func TestScoreSkills_EmptyRequirement(t *testing.T) {
	match := ScoreSkills(types.JobRequirement{}, []types.Skill{{Name: "Go"}})

	assert.Zero(t, match.Total)
	assert.Zero(t, match.Confidence)
	assert.Empty(t, match.Missing)
}

func TestScoreSkills_DuplicateCandidatesCountedOnce(t *testing.T) {
	skills := []types.Skill{
		{Name: "JavaScript", Source: types.SourceKeyword},
		{Name: "javascript", Source: types.SourceBasic},
	}

	match := ScoreSkills(fullStackRequirement(), skills)

	assert.Len(t, match.Matched, 1)
}
