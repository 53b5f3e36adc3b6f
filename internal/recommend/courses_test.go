package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPredominantLevel(t *testing.T) {
	tests := []struct {
		name   string
		skills []types.Skill
		want   string
	}{
		{"no skills", nil, "Beginner"},
		{"beginners only", []types.Skill{{Proficiency: types.ProficiencyBeginner}}, "Beginner"},
		{"intermediate", []types.Skill{{Proficiency: types.ProficiencyIntermediate}}, "Intermediate"},
		{"advanced outranks intermediate tie", []types.Skill{
			{Proficiency: types.ProficiencyAdvanced},
			{Proficiency: types.ProficiencyIntermediate},
		}, "Advanced"},
		{"more intermediate than advanced", []types.Skill{
			{Proficiency: types.ProficiencyAdvanced},
			{Proficiency: types.ProficiencyIntermediate},
			{Proficiency: types.ProficiencyIntermediate},
		}, "Intermediate"},
		{"expert counts as advanced", []types.Skill{{Proficiency: types.ProficiencyExpert}}, "Advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predominantLevel(tt.skills))
		})
	}
}

func TestCourses_GapCourseInjectedFirst(t *testing.T) {
	missing := []types.WeightedSkill{{Name: "Python", Importance: 8}}

	courses := Courses(nil, missing)

	require.NotEmpty(t, courses)
	assert.Equal(t, "Python Programming Masterclass", courses[0].Title)
	assert.Equal(t, "Udacity", courses[0].Provider)
}

func TestCourses_DataFamilyMatchesSubstring(t *testing.T) {
	missing := []types.WeightedSkill{{Name: "Data Visualization", Importance: 6}}

	courses := Courses(nil, missing)

	require.NotEmpty(t, courses)
	assert.Equal(t, "Data Science Fundamentals", courses[0].Title)
}

func TestCourses_NoGapsUsesLevelPool(t *testing.T) {
	skills := []types.Skill{{Name: "HTML", Proficiency: types.ProficiencyBeginner}}

	courses := Courses(skills, nil)

	require.Len(t, courses, 2)
	for _, c := range courses {
		assert.Equal(t, "Beginner", c.Level)
	}
}

func TestCourses_NeverExceedsFive(t *testing.T) {
	missing := []types.WeightedSkill{
		{Name: "Python", Importance: 8},
		{Name: "Java", Importance: 7},
		{Name: "Big Data", Importance: 6},
	}
	skills := []types.Skill{{Name: "Go", Proficiency: types.ProficiencyAdvanced}}
	extras := []types.Recommendation{
		rec("Extra One", "LinkedIn Learning", "generated course description"),
		rec("Extra Two", "Skillshare", "another generated course"),
		rec("Extra Three", "FutureLearn", "yet another one"),
	}

	courses := Courses(skills, missing, extras...)

	assert.Len(t, courses, 5)
	// All three gap families hit; their courses lead the list.
	assert.Equal(t, "Python Programming Masterclass", courses[0].Title)
	assert.Equal(t, "Java Enterprise Development", courses[1].Title)
	assert.Equal(t, "Data Science Fundamentals", courses[2].Title)
}

func TestCourses_BackfillAllowsProviderRepeatToReachMinimum(t *testing.T) {
	// The java gap course comes from PluralSight, which is also an
	// advanced-pool provider. With only two pool entries the list would
	// fall under the minimum of three, so backfill readmits the
	// repeated provider.
	missing := []types.WeightedSkill{{Name: "Java", Importance: 7}}
	skills := []types.Skill{{Name: "Go", Proficiency: types.ProficiencyExpert}}

	courses := Courses(skills, missing)

	require.Len(t, courses, 3)
	assert.Equal(t, "Java Enterprise Development", courses[0].Title)
	seen := make(map[string]int)
	for _, c := range courses {
		seen[c.Provider]++
	}
	assert.Equal(t, 2, seen["PluralSight"])
}

func TestCourses_ExtrasJoinDiversityPool(t *testing.T) {
	extras := []types.Recommendation{
		rec("Generated Course", "CodeAcademy", "a fairly long generated description to rank well"),
	}

	courses := Courses(nil, nil, extras...)

	titles := make([]string, 0, len(courses))
	for _, c := range courses {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "Generated Course")
}
