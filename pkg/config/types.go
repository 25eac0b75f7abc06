// Package config provides configuration loading and validation for
// codextrace.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LogDir is the directory containing codex run logs.
	LogDir string `yaml:"log_dir"`

	// LogPattern is the glob pattern for discovering run logs.
	LogPattern string `yaml:"log_pattern"`

	// Extractors defines additional custom extractors.
	Extractors []ExtractorConfig `yaml:"extractors,omitempty"`

	// Classify overrides the change classification rules.
	Classify ClassifyConfig `yaml:"classify,omitempty"`
}

// ExtractorConfig defines one custom extractor.
type ExtractorConfig struct {
	// Name is the registration category for the extractor.
	Name string `yaml:"name"`

	// Pattern is the regex matched against log text. Compiled during
	// validation; invalid patterns fail at load time.
	Pattern string `yaml:"pattern"`

	// ChangeType is the label applied to matches (defaults to "custom").
	ChangeType string `yaml:"change_type,omitempty"`

	// compiledPattern is populated during validation.
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled extractor pattern.
func (e *ExtractorConfig) CompiledPattern() *regexp.Regexp {
	return e.compiledPattern
}

// ClassifyConfig holds change classification rule overrides.
type ClassifyConfig struct {
	// Rules replace the default rule set when non-empty.
	Rules []RuleConfig `yaml:"rules,omitempty"`
}

// RuleConfig defines one classification rule.
type RuleConfig struct {
	// Pattern is matched case-insensitively against change text.
	Pattern string `yaml:"pattern"`

	// Type is the change type assigned on match.
	Type string `yaml:"type"`

	// Priority orders rule evaluation; lower values are checked first.
	Priority int `yaml:"priority"`

	// compiledPattern is populated during validation.
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled rule pattern.
func (r *RuleConfig) CompiledPattern() *regexp.Regexp {
	return r.compiledPattern
}
