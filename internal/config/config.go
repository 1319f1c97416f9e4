package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the on-disk pwdline configuration.
type Config struct {
	Directory DirectoryConfig `yaml:"directory"`
	LogLevel  string          `yaml:"log_level"`
}

// DirectoryConfig configures how the working directory is rendered
type DirectoryConfig struct {
	// TruncationLength is the number of trailing path components to show.
	// Zero disables truncation.
	TruncationLength int `yaml:"truncation_length"`
	// FishStylePwdDirLength abbreviates elided components to this many
	// characters instead of replacing them with an ellipsis.
	FishStylePwdDirLength int `yaml:"fish_style_pwd_dir_length"`
	// UseLogicalPath prefers $PWD over the OS-reported directory.
	UseLogicalPath bool `yaml:"use_logical_path"`
	// TruncateToRepo contracts paths inside a repository to the repo root.
	TruncateToRepo bool   `yaml:"truncate_to_repo"`
	Style          string `yaml:"style"`
	Prefix         string `yaml:"prefix"`
	Suffix         string `yaml:"suffix"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Directory: DirectoryConfig{
			TruncationLength:      3,
			FishStylePwdDirLength: 0,
			UseLogicalPath:        true,
			TruncateToRepo:        true,
			Style:                 "bold cyan",
			Prefix:                "in ",
			Suffix:                "",
		},
		LogLevel: "info",
	}
}

// Load loads the configuration from path, or returns the defaults if the
// file does not exist. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Return default config if file doesn't exist
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save saves the configuration to path with atomic write
func (c *Config) Save(path string) error {
	// Ensure config directory exists
	if err := EnsureDir(path); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write pattern)
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return err
	}

	// Rename temp file to actual config file (atomic operation)
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile) // Clean up temp file on error
		return err
	}

	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	d := c.Directory
	if d.TruncationLength < 0 {
		return fmt.Errorf("%w: truncation_length must not be negative, got %d", ErrInvalidConfig, d.TruncationLength)
	}
	if d.FishStylePwdDirLength < 0 {
		return fmt.Errorf("%w: fish_style_pwd_dir_length must not be negative, got %d", ErrInvalidConfig, d.FishStylePwdDirLength)
	}

	// Validate log level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}
