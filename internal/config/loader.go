package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML on top of the defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load loads the walker configuration and reports which file it came from.
// Search order: customPath -> ~/.walker/config.yaml -> ./configs/walker.yaml -> embedded default.
// The returned path is empty when the embedded default was used.
//
// An explicit customPath must exist and parse. Files found on the search
// path are skipped when unreadable or not YAML, but a file that parses and
// then fails validation is reported, since it is clearly meant for us.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", "walker.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var doc map[string]any
		if yaml.Unmarshal(data, &doc) != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".walker", "config.yaml")
}
