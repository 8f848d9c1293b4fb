package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RecommendConfig holds the JSON file configuration for the one-shot
// recommend command. All fields are optional; flags override file values.
type RecommendConfig struct {
	UserID    string `json:"user_id,omitempty"`    // User UUID, empty means anonymous
	EventType string `json:"event_type,omitempty"` // e.g. "dinner", "wedding"
	EventDate string `json:"event_date,omitempty"` // YYYY-MM-DD
	City      string `json:"city,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Catalog   string `json:"catalog,omitempty"` // Path to the catalog JSON file
}

// LoadRecommendConfig loads a recommend command configuration from a JSON file.
func LoadRecommendConfig(path string) (*RecommendConfig, error) {
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

	var cfg RecommendConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeFlag returns the flag value when set, otherwise the file value.
func MergeFlag(flag, fileValue string) string {
	if flag != "" {
		return flag
	}
	return fileValue
}
