// Package config provides configuration loading and validation for the
// analyzer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the analyzer configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generative backend
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty disables AI augmentation

	// Regional ingestion
	UseBrowser    bool   `json:"use_browser,omitempty"`    // Use headless browser for JS-rendered salary sources
	SourceCountry string `json:"source_country,omitempty"` // Country tag for ingested profiles

	// Behavior
	Resume  string `json:"resume,omitempty"` // Path to resume text file for offline analysis
	JobType string `json:"job_type,omitempty"`
	Verbose bool   `json:"verbose,omitempty"` // Print detailed result breakdown
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SourceCountry == "" {
		result.SourceCountry = defaults.SourceCountry
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobType == "" {
		result.JobType = defaults.JobType
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
