package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/codextrace/codextrace/pkg/classify"
	"github.com/codextrace/codextrace/pkg/extract"
	"github.com/codextrace/codextrace/pkg/model"
	"github.com/codextrace/codextrace/pkg/parser"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles regex patterns.
// Pattern compilation happens here, never at match time.
func Validate(cfg *Config) error {
	if cfg.LogDir == "" {
		return errors.New("log_dir: must not be empty")
	}
	if cfg.LogPattern == "" {
		return errors.New("log_pattern: must not be empty")
	}

	for i := range cfg.Extractors {
		if err := validateExtractor(&cfg.Extractors[i]); err != nil {
			return fmt.Errorf("extractors[%d] (%s): %w", i, cfg.Extractors[i].Name, err)
		}
	}

	for i := range cfg.Classify.Rules {
		if err := validateRule(&cfg.Classify.Rules[i]); err != nil {
			return fmt.Errorf("classify.rules[%d]: %w", i, err)
		}
	}

	return nil
}

func validateExtractor(ec *ExtractorConfig) error {
	if ec.Name == "" {
		return errors.New("name is required")
	}
	if ec.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile("(?i)" + ec.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	ec.compiledPattern = re

	if ec.ChangeType == "" {
		ec.ChangeType = string(model.ChangeCustom)
	}
	return nil
}

func validateRule(rc *RuleConfig) error {
	if rc.Pattern == "" {
		return errors.New("pattern is required")
	}
	if rc.Type == "" {
		return errors.New("type is required")
	}
	if !model.ValidChangeType(rc.Type) {
		return fmt.Errorf("invalid type %q", rc.Type)
	}

	re, err := regexp.Compile("(?i)" + rc.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	rc.compiledPattern = re
	return nil
}

// Classifier builds a classifier from the configured rules, falling back to
// the default rule set when none are configured. The config must have been
// validated.
func (c *Config) Classifier() *classify.Classifier {
	if len(c.Classify.Rules) == 0 {
		return classify.Default()
	}
	rules := make([]classify.Rule, 0, len(c.Classify.Rules))
	for i := range c.Classify.Rules {
		rc := &c.Classify.Rules[i]
		rules = append(rules, classify.Rule{
			Pattern:  rc.compiledPattern,
			Type:     model.ChangeType(rc.Type),
			Priority: rc.Priority,
		})
	}
	return classify.New(rules...)
}

// Parser builds a parser wired with the configured pattern, classifier, and
// custom extractors. The config must have been validated.
func (c *Config) Parser(opts ...parser.Option) (*parser.Parser, error) {
	classifier := c.Classifier()

	built := []parser.Option{
		parser.WithPattern(c.LogPattern),
		parser.WithExtractor("change", extract.NewChangeDetector(classifier)),
	}
	for i := range c.Extractors {
		ec := &c.Extractors[i]
		custom, err := extract.NewCustomExtractor(ec.Pattern, ec.ChangeType)
		if err != nil {
			return nil, fmt.Errorf("extractor %s: %w", ec.Name, err)
		}
		built = append(built, parser.WithExtractor(ec.Name, custom))
	}

	return parser.New(c.LogDir, append(built, opts...)...)
}
