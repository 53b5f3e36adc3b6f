package scoring

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Experience scoring constants.
const (
	pointsPerEntry     = 20
	seniorTitleBonus   = 30
	engineerTitleBonus = 20
	pointsPerYear      = 10
	maxDurationPoints  = 30
	maxExperienceScore = 100
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ScoreExperience scores the candidate's work history. Two independent
// signals are computed and reconciled by taking the maximum, never the
// average: a candidate should not be penalized for whichever signal is
// weaker.
//
// Signal one is the simple entry count: min(100, entries*20). Signal two
// walks each entry, awarding a base for its presence, seniority-keyword
// bonuses on the title, and elapsed years parsed from explicit date
// ranges in the duration string.
func ScoreExperience(entries []types.ExperienceEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	countScore := float64(min(maxExperienceScore, len(entries)*pointsPerEntry))

	detailed := 0.0
	for _, e := range entries {
		entryScore := float64(pointsPerEntry)

		title := strings.ToLower(e.Title)
		switch {
		case strings.Contains(title, "senior"),
			strings.Contains(title, "lead"),
			strings.Contains(title, "principal"),
			strings.Contains(title, "architect"),
			strings.Contains(title, "manager"):
			entryScore += seniorTitleBonus
		case strings.Contains(title, "developer"),
			strings.Contains(title, "engineer"):
			entryScore += engineerTitleBonus
		}

		years := elapsedYears(e.Duration)
		entryScore += float64(min(maxDurationPoints, years*pointsPerYear))

		detailed += entryScore
	}
	if detailed > maxExperienceScore {
		detailed = maxExperienceScore
	}

	if detailed > countScore {
		return detailed
	}
	return countScore
}

// elapsedYears parses explicit years out of a duration string like
// "2019 - 2023" or "2021 - Present". Unparsable durations count as zero.
func elapsedYears(duration string) int {
	lower := strings.ToLower(duration)
	years := yearPattern.FindAllString(lower, -1)
	if len(years) == 0 {
		return 0
	}

	first := atoiYear(years[0])
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
		elapsed := time.Now().Year() - first
		if elapsed < 0 {
			return 0
		}
		return elapsed
	}
	if len(years) < 2 {
		return 0
	}
	last := atoiYear(years[len(years)-1])
	elapsed := last - first
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed
}

func atoiYear(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
