// Package classify assigns change types to candidate change text using an
// ordered set of pattern rules.
package classify

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/codextrace/codextrace/pkg/model"
)

// Rule maps a text pattern to a change type. Rules with lower priority
// values are evaluated first; ties keep declaration order.
type Rule struct {
	Pattern  *regexp.Regexp
	Type     model.ChangeType
	Priority int
}

// NewRule compiles a case-insensitive rule pattern.
func NewRule(pattern string, typ model.ChangeType, priority int) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}
	return Rule{Pattern: re, Type: typ, Priority: priority}, nil
}

// Classifier evaluates rules top to bottom; the first match wins.
type Classifier struct {
	rules []Rule
}

// New creates a classifier from the given rules, ordered by ascending
// priority. The sort is stable, so rules sharing a priority keep their
// declaration order.
func New(rules ...Rule) *Classifier {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return &Classifier{rules: ordered}
}

// Default returns a classifier with the default rule set.
func Default() *Classifier {
	return New(DefaultRules()...)
}

// Classify returns the change type of the first matching rule, or
// ChangeUnknown when no rule matches. It never fails.
func (c *Classifier) Classify(text string) model.ChangeType {
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(text) {
			return rule.Type
		}
	}
	return model.ChangeUnknown
}

// Rules returns the evaluation-ordered rule set.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// mustRule compiles a built-in rule. Panics on invalid patterns, which can
// only happen from a bad edit to the defaults below.
func mustRule(pattern string, typ model.ChangeType, priority int) Rule {
	rule, err := NewRule(pattern, typ, priority)
	if err != nil {
		panic(err)
	}
	return rule
}

// DefaultRules returns the built-in classification rules. Specific
// categories are listed ahead of general ones so that a block containing
// keywords from both resolves to the specific type.
func DefaultRules() []Rule {
	return []Rule{
		mustRule(`\berror\b|\bfailed\b|\bfailure\b|exception|traceback`, model.ChangeError, 10),
		mustRule(`(?m)\*\*\* (begin|update|end) patch|^--- |^\+\+\+ |@@ -\d`, model.ChangePatch, 20),
		mustRule(`(?m)\bcommand\b|\bshell\b|\bexec(uted|uting)?\b|^\$ `, model.ChangeCommand, 30),
		mustRule(`\bcreat(e|ed|ing)\b|\bnew file\b|\badded file\b`, model.ChangeCreation, 40),
		mustRule(`\bmodif(y|ied|ying)\b|\bupdat(e|ed|ing)\b|\bchang(e|ed|ing)\b`, model.ChangeModification, 50),
	}
}
