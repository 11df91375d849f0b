package config

// DefaultMaxValueLength is the number of characters a rendered value may use
// in a diagnostic before it is truncated.
const DefaultMaxValueLength = 100

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Verbose:        BoolPtr(false),
		NoColor:        BoolPtr(false),
		MaxValueLength: DefaultMaxValueLength,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetMaxValueLength() == defaults.GetMaxValueLength()
}
