package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTextQuality_SimpleSentence(t *testing.T) {
	quality := AnalyzeTextQuality("one two three four five six seven eight nine ten.")

	assert.Equal(t, 10, quality.WordCount)
	assert.Equal(t, 1, quality.SentenceCount)
	// 100 - (10/1)*2
	assert.Equal(t, 80, quality.ReadabilityScore)
}

func TestAnalyzeTextQuality_EmptyText(t *testing.T) {
	quality := AnalyzeTextQuality("")

	assert.Zero(t, quality.WordCount)
	assert.Zero(t, quality.SentenceCount)
	assert.Zero(t, quality.ReadabilityScore)
	assert.Zero(t, quality.AvgWordLength)
}

func TestAnalyzeTextQuality_TrailingFragmentCountsAsSentence(t *testing.T) {
	quality := AnalyzeTextQuality("word")

	assert.Equal(t, 1, quality.SentenceCount)
	assert.Equal(t, 98, quality.ReadabilityScore)
}

func TestAnalyzeTextQuality_LongSentenceClampsToZero(t *testing.T) {
	text := strings.Repeat("word ", 60) + "end."

	quality := AnalyzeTextQuality(text)

	assert.Equal(t, 1, quality.SentenceCount)
	assert.Zero(t, quality.ReadabilityScore)
}

func TestAnalyzeTextQuality_AvgWordLengthRounded(t *testing.T) {
	// (2 + 3) / 2 = 2.5
	quality := AnalyzeTextQuality("ab abc")

	assert.Equal(t, 2.5, quality.AvgWordLength)
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"mixed terminators", "Hello world. How are you? Great!", 3},
		{"repeated terminators count once", "Wow!! Really...", 2},
		{"whitespace only", "   \n\t ", 0},
		{"empty", "", 0},
		{"trailing fragment", "First. Second", 2},
		{"lone punctuation", "...", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countSentences(tt.text))
		})
	}
}
