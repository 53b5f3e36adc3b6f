package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestScoreExperience_Empty(t *testing.T) {
	assert.Zero(t, ScoreExperience(nil))
	assert.Zero(t, ScoreExperience([]types.ExperienceEntry{}))
}

func TestScoreExperience_PlainEntriesUseCount(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Cashier", Company: "Acme"},
		{Title: "Clerk", Company: "Initech"},
	}

	// Count signal: 2 * 20. Detailed signal is the same here; the
	// reconciled result is the max of the two, never the average.
	assert.Equal(t, 40.0, ScoreExperience(entries))
}

func TestScoreExperience_SeniorTitleAndDuration(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Senior Software Engineer", Company: "Acme", Duration: "2018 - 2022"},
	}

	// Base 20 + senior bonus 30 + 4 years of duration capped at 30.
	assert.Equal(t, 80.0, ScoreExperience(entries))
}

func TestScoreExperience_EngineerTitleBonus(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Software Engineer", Company: "Acme"},
	}

	assert.Equal(t, 40.0, ScoreExperience(entries))
}

func TestScoreExperience_SeniorOutranksEngineerKeyword(t *testing.T) {
	// "Lead Developer" hits both keyword groups; only the senior bonus
	// applies.
	entries := []types.ExperienceEntry{
		{Title: "Lead Developer", Company: "Acme"},
	}

	assert.Equal(t, 50.0, ScoreExperience(entries))
}

func TestScoreExperience_DurationPointsCapped(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Analyst", Duration: "2005 - 2020"},
	}

	// 15 years would be 150 duration points uncapped; the cap is 30.
	assert.Equal(t, 50.0, ScoreExperience(entries))
}

func TestScoreExperience_PresentCountsElapsedYears(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Analyst", Duration: "2015 - Present"},
	}

	// Elapsed years are well past the duration cap by now.
	assert.Equal(t, 50.0, ScoreExperience(entries))
}

func TestScoreExperience_MaxNotAverage(t *testing.T) {
	// One rich entry: detailed signal 80 vs count signal 20. Averaging
	// would give 50; the score must be the stronger signal.
	entries := []types.ExperienceEntry{
		{Title: "Principal Architect", Duration: "2015 - 2022"},
	}

	assert.Equal(t, 80.0, ScoreExperience(entries))
}

func TestScoreExperience_CappedAt100(t *testing.T) {
	entries := make([]types.ExperienceEntry, 6)
	for i := range entries {
		entries[i] = types.ExperienceEntry{Title: "Senior Engineer", Duration: "2010 - 2020"}
	}

	assert.Equal(t, 100.0, ScoreExperience(entries))
}

func TestElapsedYears(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{"explicit range", "2019 - 2023", 4},
		{"reversed range", "2023 - 2019", 4},
		{"single year", "2020", 0},
		{"no digits", "three years", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elapsedYears(tt.duration))
		})
	}
}
