package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codextrace/codextrace/pkg/model"
)

// CustomExtractor matches a caller-supplied pattern and emits ChangeRecords
// tagged with a caller-supplied change type. The pattern is compiled
// case-insensitively at construction; it is immutable afterwards.
type CustomExtractor struct {
	pattern    *regexp.Regexp
	changeType model.ChangeType
	opts       options
}

// NewCustomExtractor creates a custom extractor. Returns an error wrapping
// ErrInvalidPattern when the pattern does not compile.
func NewCustomExtractor(pattern, changeType string, opts ...Option) (*CustomExtractor, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	if changeType == "" {
		changeType = string(model.ChangeCustom)
	}
	return &CustomExtractor{
		pattern:    re,
		changeType: model.ChangeType(changeType),
		opts:       buildOptions(opts),
	}, nil
}

// Category returns the configured change type label.
func (e *CustomExtractor) Category() string { return string(e.changeType) }

// Extract returns one ChangeRecord per pattern match, ordered by position.
// The record content is the first capture group when the pattern defines
// one, otherwise the whole match.
func (e *CustomExtractor) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.ChangeRecord

	for _, loc := range e.pattern.FindAllStringSubmatchIndex(content, -1) {
		full := content[loc[0]:loc[1]]
		matched := full
		if len(loc) > 2 && loc[2] >= 0 {
			matched = content[loc[2]:loc[3]]
		}
		line := strings.Count(content[:loc[0]], "\n") + 1

		results = append(results, &model.ChangeRecord{
			Type:     e.changeType,
			LogFile:  base,
			LineNum:  line,
			Content:  matched,
			RawMatch: full,
		})
	}

	if e.opts.dedup {
		results = dedupe(results, func(c *model.ChangeRecord) string {
			return c.Content
		})
	}
	return asRecords(results)
}
