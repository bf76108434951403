// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/cmap/config.yml.
type GlobalConfig struct {
	DataPath    string `yaml:"data_path,omitempty"`    // Path to the yearly concept table
	DefaultYear int    `yaml:"default_year,omitempty"` // Year rendered when --year is omitted
	MinYear     int    `yaml:"min_year,omitempty"`     // Lower bound of the year selector
	MaxYear     int    `yaml:"max_year,omitempty"`     // Upper bound of the year selector
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "cmap"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultMinYear and DefaultMaxYear bound the year selector when the
	// config file doesn't override them.
	DefaultMinYear = 2015
	DefaultMaxYear = 2025
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/cmap/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	// Expand tilde in data_path
	if cfg.DataPath != "" {
		cfg.DataPath = ExpandTilde(cfg.DataPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// SaveGlobalConfig writes the global configuration file, creating the
// config directory if needed, and refreshes the cache.
func SaveGlobalConfig(cfg *GlobalConfig) error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = cfg
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetDataPath returns the configured data file path from global config.
func GetDataPath() string {
	cfg, _ := LoadGlobalConfig()
	if cfg == nil {
		return ""
	}
	return cfg.DataPath
}

// YearBounds returns the inclusive year range the selector accepts,
// falling back to the built-in defaults for unset bounds.
func (c *GlobalConfig) YearBounds() (int, int) {
	min, max := DefaultMinYear, DefaultMaxYear
	if c.MinYear != 0 {
		min = c.MinYear
	}
	if c.MaxYear != 0 {
		max = c.MaxYear
	}
	return min, max
}

// ExpandTilde expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// HelpfulConfigMessage returns a helpful message when data_path is not configured.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`No data file configured.

Tip: Create %s to set a default data file:
  mkdir -p %s
  echo 'data_path: /path/to/ai_yearly_data.csv' > %s

Or pass --data, or set CONCEPTMAP_DATA in the environment.`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
