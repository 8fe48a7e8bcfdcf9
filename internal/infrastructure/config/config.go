// Package config provides configuration loading for the autolegal
// application. Settings come from an optional YAML file plus
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// Environment variable names.
const (
	// EnvConfigPath is the path to the optional YAML configuration file.
	EnvConfigPath = "AUTOLEGAL_CONFIG"

	// EnvLogLevel is the log level (debug, info, warn, error).
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogAppName is the application name for log context.
	EnvLogAppName = "LOG_APP_NAME"

	// EnvBoxSize overrides the destination box capacity.
	EnvBoxSize = "AUTOLEGAL_BOX_SIZE"
)

// Default values.
const (
	DefaultLogLevel   = "info"
	DefaultLogAppName = "autolegal"
)

// Configuration errors.
var (
	// ErrConfigNotFound indicates the configured file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigInvalid indicates the configuration file is not valid YAML.
	ErrConfigInvalid = errors.New("configuration file is not valid YAML")

	// ErrBoxSizeInvalid indicates the box size override is not a
	// positive integer.
	ErrBoxSizeInvalid = errors.New("box size must be a positive integer")
)

// fileConfig is the on-disk YAML shape. Gate flags are pointers so an
// absent key keeps the enabled-by-default behavior.
type fileConfig struct {
	LogLevel   string `yaml:"log_level"`
	LogAppName string `yaml:"app_name"`
	BoxSize    int    `yaml:"box_size"`
	Gate       struct {
		Matcher *bool `yaml:"matcher"`
		Search  *bool `yaml:"search"`
	} `yaml:"gate"`
}

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string

	// LogAppName is the application name for log context.
	LogAppName string

	// BoxSize is the destination box capacity.
	BoxSize int

	// MatcherEnabled permits the fast constraint-matching strategy.
	MatcherEnabled bool

	// SearchEnabled permits the slow fallback search strategy.
	SearchEnabled bool
}

// FileReader reads the configuration file. Injectable for testing.
type FileReader func(path string) ([]byte, error)

// Load loads the application configuration from the environment and the
// optional AUTOLEGAL_CONFIG file.
func Load() (*Config, error) {
	return LoadWithReader(os.ReadFile)
}

// LoadWithReader loads configuration using the provided file reader.
// This function enables dependency injection for testing.
func LoadWithReader(read FileReader) (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		LogAppName:     DefaultLogAppName,
		BoxSize:        domain.DefaultBoxSize,
		MatcherEnabled: true,
		SearchEnabled:  true,
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := applyFile(cfg, read, path); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	if name := os.Getenv(EnvLogAppName); name != "" {
		cfg.LogAppName = name
	}
	if raw := os.Getenv(EnvBoxSize); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBoxSizeInvalid, raw)
		}
		cfg.BoxSize = size
	}

	return cfg, nil
}

// applyFile overlays the YAML file's settings onto the defaults.
func applyFile(cfg *Config, read FileReader, path string) error {
	data, err := read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogAppName != "" {
		cfg.LogAppName = file.LogAppName
	}
	if file.BoxSize > 0 {
		cfg.BoxSize = file.BoxSize
	}
	if file.Gate.Matcher != nil {
		cfg.MatcherEnabled = *file.Gate.Matcher
	}
	if file.Gate.Search != nil {
		cfg.SearchEnabled = *file.Gate.Search
	}

	return nil
}
