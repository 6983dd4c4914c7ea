package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"babysched/internal/analyzer"
)

// Config holds the application configuration
type Config struct {
	// Theme is the color theme to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// LogFile is the schedule log to analyze when no -file flag is given
	LogFile string `yaml:"log_file"`

	// HideStaleEvents hides regular events absent across the trailing
	// window of days, listing them in a separate summary instead
	HideStaleEvents bool `yaml:"hide_stale_events"`

	// RegularThreshold is the lifetime occurrence count at which an
	// event gets its own table column
	RegularThreshold int `yaml:"regular_threshold"`

	// StaleWindowDays is the number of trailing days used by the
	// staleness check
	StaleWindowDays int `yaml:"stale_window_days"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:            "mocha",
		HideStaleEvents:  true,
		RegularThreshold: 3,
		StaleWindowDays:  3,
	}
}

// Options translates the config into analyzer options
func (c *Config) Options() analyzer.Options {
	return analyzer.Options{
		HideStaleEvents:  c.HideStaleEvents,
		RegularThreshold: c.RegularThreshold,
		StaleWindow:      c.StaleWindowDays,
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	// Check in order: current dir, ~/.config/babysched/, XDG_CONFIG_HOME
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "babysched", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "babysched", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil { //nolint:gosec // config path from known locations
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}

// global config instance
var globalConfig *Config

// Global returns the global config instance, loading it if necessary
func Global() *Config {
	if globalConfig == nil {
		cfg, err := LoadFromDefaultPath()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal sets the global config instance (useful for testing)
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}
