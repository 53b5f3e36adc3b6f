package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeTextQuality computes readability statistics for a resume body
// using a simplified Flesch-style approximation:
//
//	readability = 100 - (words/sentences) * 2, clamped to [0,100]
//
// Zero sentences defines readability as 0 rather than dividing by zero.
func AnalyzeTextQuality(text string) types.TextQuality {
	sentences := countSentences(text)
	words := strings.Fields(text)

	quality := types.TextQuality{
		SentenceCount: sentences,
		WordCount:     len(words),
	}

	if len(words) > 0 {
		totalLen := 0
		for _, w := range words {
			totalLen += len(w)
		}
		quality.AvgWordLength = math.Round(float64(totalLen)/float64(len(words))*100) / 100
	}

	if sentences == 0 {
		return quality
	}

	readability := 100 - (float64(len(words))/float64(sentences))*2
	quality.ReadabilityScore = ClampScore(readability)
	return quality
}

// countSentences counts terminator-delimited sentences, ignoring empty
// fragments from trailing punctuation.
func countSentences(text string) int {
	count := 0
	fragment := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if fragment {
				count++
				fragment = false
			}
		case ' ', '\t', '\n', '\r':
			// whitespace does not start a fragment
		default:
			fragment = true
		}
	}
	if fragment {
		count++
	}
	return count
}
