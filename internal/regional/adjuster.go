// Package regional adjusts salary figures for local markets using
// cost-of-living profiles.
package regional

import (
	"context"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Query is a partial region lookup. Empty fields match anything.
type Query struct {
	Country string
	State   string
	City    string
}

// ProfileFinder looks up regional profiles. The db package provides the
// production implementation.
type ProfileFinder interface {
	Find(ctx context.Context, q Query) (*types.RegionalProfile, error)
}

// Adjuster scales salary figures by regional cost of living. Adjustment
// is best-effort: an unknown or unparseable location leaves figures
// unchanged rather than failing the analysis.
type Adjuster struct {
	finder ProfileFinder
}

// NewAdjuster creates an adjuster backed by a profile store.
func NewAdjuster(finder ProfileFinder) *Adjuster {
	return &Adjuster{finder: finder}
}

// ParseLocation splits a free-text location into a lookup query.
// "Bangalore, India" yields city+country; "San Francisco, CA, USA"
// yields city+state+country; a single token is treated as a city.
func ParseLocation(location string) Query {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 0:
		return Query{}
	case 1:
		return Query{City: parts[0]}
	case 2:
		return Query{City: parts[0], Country: parts[1]}
	default:
		return Query{City: parts[0], State: parts[1], Country: parts[len(parts)-1]}
	}
}

// Multiplier resolves the salary multiplier for a location. It returns
// 1.0 when the location is blank, unknown, or the lookup fails.
func (a *Adjuster) Multiplier(ctx context.Context, location string) float64 {
	if a == nil || a.finder == nil || strings.TrimSpace(location) == "" {
		return 1.0
	}
	profile, err := a.finder.Find(ctx, ParseLocation(location))
	if err != nil || profile == nil || profile.SalaryMultiplier <= 0 {
		return 1.0
	}
	return profile.SalaryMultiplier
}

// AdjustRange rescales a formatted salary range string for a location.
// The result round-trips through the same "$Xk - $Yk" format.
func (a *Adjuster) AdjustRange(ctx context.Context, salaryRange, location string) string {
	multiplier := a.Multiplier(ctx, location)
	if multiplier == 1.0 {
		return salaryRange
	}
	min, max := ParseSalaryRange(salaryRange)
	return FormatSalaryRange(scale(min, multiplier), scale(max, multiplier))
}

// AdjustSalary rescales a single annual salary figure for a location.
func (a *Adjuster) AdjustSalary(ctx context.Context, salary int, location string) int {
	return scale(salary, a.Multiplier(ctx, location))
}

func scale(amount int, multiplier float64) int {
	return int(float64(amount)*multiplier + 0.5)
}
