package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Filters       FilterConfig `json:"filters"`
	MainBranches  []string     `json:"mainBranches"`  // Branch names treated as the main branch
	IncludeSource bool         `json:"includeSource"` // Capture file contents before/after each change
	Progress      bool         `json:"progress"`      // Show a spinner while reading history
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		MainBranches:  []string{"main", "master"},
		IncludeSource: true,
		Progress:      true,
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// An explicitly named file must exist; only the default-location probe
// falls back silently.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""

	if !explicit {
		// Try default locations
		candidates := []string{".commit-extractor.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".commit-extractor.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".commit-extractor.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
