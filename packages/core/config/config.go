package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by FromEnv.
const (
	EnvVerbose        = "CHAMOMILE_VERBOSE"
	EnvNoColor        = "CHAMOMILE_NO_COLOR"
	EnvMaxValueLength = "CHAMOMILE_MAX_VALUE_LENGTH"
	// EnvNoColorStandard follows https://no-color.org: any non-empty value disables colour.
	EnvNoColorStandard = "NO_COLOR"
)

// Config controls how expectations describe themselves in the test log.
// It never changes whether an assertion passes.
type Config struct {
	Verbose        *bool `yaml:"verbose,omitempty"`        // log success notes
	NoColor        *bool `yaml:"noColor,omitempty"`
	MaxValueLength int   `yaml:"maxValueLength,omitempty"` // characters
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetMaxValueLength returns the truncation limit, defaulting to DefaultMaxValueLength
func (c *Config) GetMaxValueLength() int {
	if c.MaxValueLength <= 0 {
		return DefaultMaxValueLength
	}
	return c.MaxValueLength
}

// Parse reads a YAML document on top of the defaults, for example a
// checked-in file handed to expect.WithConfig:
//
//	cfg, err := config.Parse([]byte("verbose: true\nmaxValueLength: 40\n"))
//	expect.That(t, got, expect.WithConfig(cfg)).ToEqual(want)
func Parse(data []byte) (*Config, error) {
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if parsed.MaxValueLength < 0 {
		return nil, fmt.Errorf("maxValueLength must not be negative, got %d", parsed.MaxValueLength)
	}
	return DefaultConfig().Merge(&parsed), nil
}

// FromEnv builds a partial config from environment variables. Unset or
// malformed variables leave the corresponding field empty.
func FromEnv() *Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) *Config {
	c := &Config{}

	if b, ok := lookupBool(lookup, EnvVerbose); ok {
		c.Verbose = BoolPtr(b)
	}
	if v, ok := lookup(EnvNoColorStandard); ok && v != "" {
		c.NoColor = BoolPtr(true)
	}
	if b, ok := lookupBool(lookup, EnvNoColor); ok {
		c.NoColor = BoolPtr(b)
	}
	if v, ok := lookup(EnvMaxValueLength); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.MaxValueLength = n
		}
	}

	return c
}

func lookupBool(lookup func(string) (string, bool), key string) (bool, bool) {
	v, ok := lookup(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// Load returns the defaults overridden by the environment.
func Load() *Config {
	return DefaultConfig().Merge(FromEnv())
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.MaxValueLength > 0 {
		result.MaxValueLength = other.MaxValueLength
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}
