package recommend

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// blockPattern matches one numbered recommendation block:
//
//	1. Title - Provider
//	Description: ...
//	Level: ...
//	Link: ...
var blockPattern = regexp.MustCompile(
	`(?m)^\s*\d+\.\s*(.+?)\s*-\s*(.+?)\s*\n\s*Description:\s*(.+?)\s*\n\s*Level:\s*(.+?)\s*\n\s*Link:\s*(\S+)`)

// ParseGeneratedBlocks extracts recommendations from a generative
// backend's numbered-list response. Blocks still carrying template
// placeholders are rejected; a backend echoing its own prompt must not
// surface as real content.
func ParseGeneratedBlocks(text string) []types.Recommendation {
	var parsed []types.Recommendation
	for _, m := range blockPattern.FindAllStringSubmatch(text, -1) {
		rec := types.Recommendation{
			Title:       strings.TrimSpace(m[1]),
			Provider:    strings.TrimSpace(m[2]),
			Description: strings.TrimSpace(m[3]),
			Level:       strings.TrimSpace(m[4]),
			Link:        strings.TrimSpace(m[5]),
		}
		if isTemplateNoise(rec) {
			continue
		}
		parsed = append(parsed, rec)
	}
	return parsed
}

// isTemplateNoise reports whether a parsed block is an unfilled prompt
// template rather than a real recommendation.
func isTemplateNoise(rec types.Recommendation) bool {
	for _, field := range []string{rec.Title, rec.Provider, rec.Description, rec.Level, rec.Link} {
		if strings.Contains(field, "[") {
			return true
		}
	}
	return rec.Title == "Course Name" || rec.Provider == "Provider"
}
