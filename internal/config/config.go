// Package config handles textkit configuration loading and management.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the current textkit version.
const Version = "0.1.0"

// Config represents the textkit configuration.
type Config struct {
	// Wrap contains line-wrapping defaults.
	Wrap WrapConfig `yaml:"wrap"`

	// Abbreviate contains abbreviation defaults.
	Abbreviate AbbreviateConfig `yaml:"abbreviate"`

	// Initials contains initials-extraction defaults.
	Initials InitialsConfig `yaml:"initials"`
}

// WrapConfig contains line-wrapping defaults.
type WrapConfig struct {
	// Length is the maximum line width before wrapping.
	Length int `yaml:"length"`

	// Newline is the line-break string. Empty means the platform default.
	Newline string `yaml:"newline"`

	// BreakLongWords splits words longer than Length across lines.
	BreakLongWords bool `yaml:"break_long_words"`

	// BreakOn is the break-point regular expression. Empty means a single space.
	BreakOn string `yaml:"break_on"`
}

// AbbreviateConfig contains abbreviation defaults.
type AbbreviateConfig struct {
	// Lower is the position from which to look for a word break.
	Lower int `yaml:"lower"`

	// Upper is the maximum result length, or -1 for no maximum.
	Upper int `yaml:"upper"`

	// Suffix is appended when the text was shortened.
	Suffix string `yaml:"suffix"`
}

// InitialsConfig contains initials-extraction defaults.
type InitialsConfig struct {
	// Delimiters holds the word-separating characters. Empty means whitespace.
	Delimiters string `yaml:"delimiters"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Wrap: WrapConfig{
			Length:         80,
			Newline:        "", // Empty means use the platform line terminator
			BreakLongWords: false,
			BreakOn:        "", // Empty means break on a single space
		},
		Abbreviate: AbbreviateConfig{
			Lower:  0,
			Upper:  -1,
			Suffix: "...",
		},
		Initials: InitialsConfig{
			Delimiters: "",
		},
	}
}

// Load reads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		homeDir, _ := os.UserHomeDir()
		candidates := []string{
			filepath.Join(homeDir, ".textkit", "config.yaml"),
			filepath.Join(homeDir, ".config", "textkit", "config.yaml"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path == "" {
		return cfg, nil // No config file, use defaults
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
