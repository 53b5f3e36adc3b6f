// Package prompts provides a loader for externalized generative-backend
// prompt templates. Prompts are stored as JSON files and embedded at
// compile time so wording changes never require touching Go code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// loaded caches parsed prompt files keyed by bare filename.
var (
	loaded   = make(map[string]map[string]string)
	loadedMu sync.RWMutex
)

// Get returns the prompt stored under key in the named embedded file.
// filename is the bare name, e.g. "analysis.json".
func Get(filename, key string) (string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts required at initialization time; a missing
// prompt is a packaging bug, so it panics.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders without a matching key are left as-is.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

// loadFile parses an embedded prompt file, serving repeats from cache.
func loadFile(filename string) (map[string]string, error) {
	loadedMu.RLock()
	if prompts, ok := loaded[filename]; ok {
		loadedMu.RUnlock()
		return prompts, nil
	}
	loadedMu.RUnlock()

	data, err := files.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	loadedMu.Lock()
	loaded[filename] = prompts
	loadedMu.Unlock()

	return prompts, nil
}

// ClearCache drops all parsed prompt files. Used in tests.
func ClearCache() {
	loadedMu.Lock()
	loaded = make(map[string]map[string]string)
	loadedMu.Unlock()
}

// List returns the prompt keys available in a file.
func List(filename string) ([]string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}
