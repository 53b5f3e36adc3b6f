package recommend

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Recommendation list bounds. Lists are padded toward the minimum and
// never exceed the maximum.
const (
	minRecommendations = 3
	maxRecommendations = 5
)

// qualityScore ranks a recommendation by how much usable detail it
// carries: longer descriptions and links read as more substantive, and
// an explicit level is worth a fixed bump.
func qualityScore(r types.Recommendation) int {
	score := len(r.Description) + len(r.Link)
	if r.Level != "" {
		score += 10
	}
	return score
}

// selectDiverse picks candidates in quality order, keeping at most one
// item per provider. When that yields fewer than minCount items it
// backfills with the next-best remaining candidates even if their
// provider repeats, so callers always get a minimum list when the pool
// allows. usedProviders carries providers already consumed by
// priority-injected items; it is updated in place.
func selectDiverse(candidates []types.Recommendation, minCount, maxCount int, usedProviders map[string]bool) []types.Recommendation {
	if usedProviders == nil {
		usedProviders = make(map[string]bool)
	}

	ranked := make([]types.Recommendation, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return qualityScore(ranked[i]) > qualityScore(ranked[j])
	})

	var picked []types.Recommendation
	var skipped []types.Recommendation
	seenTitles := make(map[string]bool)

	for _, cand := range ranked {
		if len(picked) >= maxCount {
			break
		}
		title := strings.ToLower(cand.Title)
		if seenTitles[title] {
			continue
		}
		provider := strings.ToLower(cand.Provider)
		if usedProviders[provider] {
			skipped = append(skipped, cand)
			continue
		}
		usedProviders[provider] = true
		seenTitles[title] = true
		picked = append(picked, cand)
	}

	// Backfill only when under the minimum; repeated providers are
	// acceptable then because a too-short list is worse.
	for _, cand := range skipped {
		if len(picked) >= minCount || len(picked) >= maxCount {
			break
		}
		title := strings.ToLower(cand.Title)
		if seenTitles[title] {
			continue
		}
		seenTitles[title] = true
		picked = append(picked, cand)
	}

	return picked
}
