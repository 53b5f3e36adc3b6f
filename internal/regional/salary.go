package regional

import (
	"fmt"
	"regexp"
	"strconv"
)

// Defaults used when a salary range string has no parseable figures.
const (
	DefaultSalaryMin = 50000
	DefaultSalaryMax = 100000
)

var salaryNumberPattern = regexp.MustCompile(`\d+`)

// ParseSalaryRange extracts the first two integers from a formatted
// range like "$50k - $80k" and scales them to annual figures. Missing or
// malformed input falls back to the default range.
func ParseSalaryRange(s string) (min, max int) {
	matches := salaryNumberPattern.FindAllString(s, 2)
	if len(matches) < 2 {
		return DefaultSalaryMin, DefaultSalaryMax
	}
	lo, err1 := strconv.Atoi(matches[0])
	hi, err2 := strconv.Atoi(matches[1])
	if err1 != nil || err2 != nil {
		return DefaultSalaryMin, DefaultSalaryMax
	}
	return lo * 1000, hi * 1000
}

// FormatSalaryRange renders annual figures in the "$Xk - $Yk" display
// format used throughout job recommendations.
func FormatSalaryRange(min, max int) string {
	return fmt.Sprintf("$%dk - $%dk", min/1000, max/1000)
}
