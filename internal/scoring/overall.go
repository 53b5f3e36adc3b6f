package scoring

import "math"

// Overall score component weights.
const (
	weightSkills      = 0.35
	weightTextQuality = 0.20
	weightEducation   = 0.25
	weightExperience  = 0.20
)

// OverallScore combines the component scores into the final weighted
// score. skillTotal is in [0,1]; the remaining components are in
// [0,100]. The result is rounded to the nearest integer and clamped.
func OverallScore(skillTotal float64, readability, education, experience float64) int {
	weighted := skillTotal*100*weightSkills +
		readability*weightTextQuality +
		education*weightEducation +
		experience*weightExperience
	return ClampScore(weighted)
}

// ClampScore rounds a raw score to the nearest integer and clamps it to
// [0,100]. Every score the analysis emits goes through here.
func ClampScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
