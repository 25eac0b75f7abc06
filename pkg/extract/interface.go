// Package extract provides extractors that scan raw codex log text for one
// category of structured event each.
package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/codextrace/codextrace/pkg/model"
)

// ErrInvalidPattern indicates an extractor pattern that failed to compile.
// Pattern compilation happens at construction time, never during extraction.
var ErrInvalidPattern = errors.New("invalid extractor pattern")

// Extractor scans a full log text and returns records of its category,
// ordered by first appearance. Extractors are stateless: two calls with
// identical input yield identical output, and the input is never mutated.
// Zero matches is a valid outcome, not an error.
type Extractor interface {
	// Category returns the extractor's category name, used as the
	// registration key on a parser.
	Category() string

	// Extract scans content and returns the records found.
	Extract(logFile, content string) []model.Record
}

type options struct {
	dedup       bool
	filePattern *regexp.Regexp
}

// Option configures extractor behavior.
type Option func(*options)

// WithDedup enables deduplication by normalized content equality,
// keeping the first occurrence. Duplicates are preserved by default.
func WithDedup() Option {
	return func(o *options) {
		o.dedup = true
	}
}

// WithFilePattern restricts records to files whose path matches the
// given pattern.
func WithFilePattern(re *regexp.Regexp) Option {
	return func(o *options) {
		o.filePattern = re
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) matchesFile(path string) bool {
	if o.filePattern == nil {
		return true
	}
	return o.filePattern.MatchString(path)
}

// dedupe removes records whose key repeats, keeping the first occurrence.
func dedupe[T model.Record](records []T, key func(T) string) []T {
	seen := make(map[string]bool, len(records))
	out := records[:0:0]
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// asRecords converts a typed record slice to the Record interface slice.
func asRecords[T model.Record](records []T) []model.Record {
	out := make([]model.Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
