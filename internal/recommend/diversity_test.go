package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func rec(title, provider, desc string) types.Recommendation {
	return types.Recommendation{Title: title, Provider: provider, Description: desc}
}

func providers(recs []types.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Provider)
	}
	return out
}

func TestQualityScore(t *testing.T) {
	bare := types.Recommendation{Title: "A"}
	detailed := types.Recommendation{Title: "B", Description: "a course", Link: "https://x", Level: "Beginner"}

	assert.Zero(t, qualityScore(bare))
	assert.Equal(t, len("a course")+len("https://x")+10, qualityScore(detailed))
}

func TestSelectDiverse_OnePerProvider(t *testing.T) {
	candidates := []types.Recommendation{
		rec("First", "Coursera", "long detailed description here"),
		rec("Second", "Coursera", "short"),
		rec("Third", "Udemy", "medium length text"),
	}

	picked := selectDiverse(candidates, 1, 5, nil)

	require.Len(t, picked, 2)
	assert.ElementsMatch(t, []string{"Coursera", "Udemy"}, providers(picked))
	// Higher quality Coursera entry wins the provider slot.
	assert.Equal(t, "First", picked[0].Title)
}

func TestSelectDiverse_BackfillBelowMinimum(t *testing.T) {
	candidates := []types.Recommendation{
		rec("First", "Coursera", "aaaa"),
		rec("Second", "Coursera", "bbb"),
		rec("Third", "Coursera", "cc"),
	}

	picked := selectDiverse(candidates, 3, 5, nil)

	// Provider diversity yields one; backfill tops up to the minimum.
	assert.Len(t, picked, 3)
}

func TestSelectDiverse_NoBackfillAtMinimum(t *testing.T) {
	candidates := []types.Recommendation{
		rec("A", "Coursera", "aaaa"),
		rec("B", "Udemy", "bbb"),
		rec("C", "edX", "cc"),
		rec("D", "Coursera", "second entry from the same provider"),
	}

	picked := selectDiverse(candidates, 3, 5, nil)

	require.Len(t, picked, 3)
	seen := make(map[string]int)
	for _, p := range providers(picked) {
		seen[p]++
	}
	assert.Equal(t, 1, seen["Coursera"])
}

func TestSelectDiverse_CapsAtMaximum(t *testing.T) {
	candidates := []types.Recommendation{
		rec("A", "P1", "x"), rec("B", "P2", "x"), rec("C", "P3", "x"),
		rec("D", "P4", "x"), rec("E", "P5", "x"), rec("F", "P6", "x"),
	}

	picked := selectDiverse(candidates, 3, 5, nil)

	assert.Len(t, picked, 5)
}

func TestSelectDiverse_DuplicateTitlesDropped(t *testing.T) {
	candidates := []types.Recommendation{
		rec("Same Course", "Coursera", "xxxx"),
		rec("same course", "Udemy", "xxx"),
	}

	picked := selectDiverse(candidates, 1, 5, nil)

	assert.Len(t, picked, 1)
}

func TestSelectDiverse_HonorsUsedProviders(t *testing.T) {
	used := map[string]bool{"udacity": true}
	candidates := []types.Recommendation{
		rec("A", "Udacity", "very long description to rank first"),
		rec("B", "Coursera", "short"),
	}

	picked := selectDiverse(candidates, 1, 5, used)

	require.Len(t, picked, 1)
	assert.Equal(t, "Coursera", picked[0].Provider)
}

func TestSelectDiverse_EmptyPool(t *testing.T) {
	assert.Empty(t, selectDiverse(nil, 3, 5, nil))
}
