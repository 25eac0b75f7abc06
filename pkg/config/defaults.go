package config

import "os"

// Default values for configuration.
const (
	DefaultLogDir     = "."
	DefaultLogPattern = "codex_run_*.log"
)

// Environment variable names.
const (
	EnvLogDir     = "CODEXTRACE_LOG_DIR"
	EnvLogPattern = "CODEXTRACE_LOG_PATTERN"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogDir:     DefaultLogDir,
		LogPattern: DefaultLogPattern,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.LogDir = dir
	}
	if pattern := os.Getenv(EnvLogPattern); pattern != "" {
		c.LogPattern = pattern
	}
}
