package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratedBlocks_WellFormed(t *testing.T) {
	text := `Here are some courses:

1. Advanced Go Concurrency - Udemy
Description: Deep dive into goroutines, channels, and the memory model.
Level: Advanced
Link: https://udemy.com/go-concurrency

2. SQL for Analysts - Coursera
Description: Window functions and query optimization.
Level: Intermediate
Link: https://coursera.org/sql-analysts

Hope these help!`

	recs := ParseGeneratedBlocks(text)

	require.Len(t, recs, 2)
	assert.Equal(t, "Advanced Go Concurrency", recs[0].Title)
	assert.Equal(t, "Udemy", recs[0].Provider)
	assert.Equal(t, "Deep dive into goroutines, channels, and the memory model.", recs[0].Description)
	assert.Equal(t, "Advanced", recs[0].Level)
	assert.Equal(t, "https://udemy.com/go-concurrency", recs[0].Link)
	assert.Equal(t, "SQL for Analysts", recs[1].Title)
}

func TestParseGeneratedBlocks_RejectsTemplatePlaceholders(t *testing.T) {
	text := `1. [Course Title] - [Provider]
Description: [one sentence on what it covers]
Level: [Beginner]
Link: https://example.com`

	assert.Empty(t, ParseGeneratedBlocks(text))
}

func TestParseGeneratedBlocks_RejectsEchoedTemplate(t *testing.T) {
	text := `1. Course Name - Provider
Description: one sentence on what it covers
Level: Beginner
Link: https://example.com`

	assert.Empty(t, ParseGeneratedBlocks(text))
}

func TestParseGeneratedBlocks_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose only", "I could not find any suitable courses."},
		{"missing link line", "1. A Course - Udemy\nDescription: things\nLevel: Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseGeneratedBlocks(tt.text))
		})
	}
}

func TestParseGeneratedBlocks_MixedValidAndNoise(t *testing.T) {
	text := `1. Real Course - Udemy
Description: an actual course.
Level: Beginner
Link: https://udemy.com/real

2. [Course Title] - Provider
Description: [placeholder]
Level: Beginner
Link: https://example.com`

	recs := ParseGeneratedBlocks(text)

	require.Len(t, recs, 1)
	assert.Equal(t, "Real Course", recs[0].Title)
}
