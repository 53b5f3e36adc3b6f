package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON output.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ExtractJSONArray slices the first top-level JSON array out of a model
// response, tolerating prose before or after it.
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
