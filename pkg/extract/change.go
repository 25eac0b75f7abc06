package extract

import (
	"path/filepath"

	"github.com/codextrace/codextrace/pkg/classify"
	"github.com/codextrace/codextrace/pkg/model"
)

// ChangeDetector extracts declared change events from codex logs. Events
// carrying an unknown change type are classified from their content.
type ChangeDetector struct {
	classifier *classify.Classifier
	opts       options
}

// NewChangeDetector creates a change detector. A nil classifier falls back
// to the default rule set.
func NewChangeDetector(classifier *classify.Classifier, opts ...Option) *ChangeDetector {
	if classifier == nil {
		classifier = classify.Default()
	}
	return &ChangeDetector{classifier: classifier, opts: buildOptions(opts)}
}

// Category returns "change".
func (e *ChangeDetector) Category() string { return "change" }

// Extract returns one ChangeRecord per codex_change event.
func (e *ChangeDetector) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.ChangeRecord

	for _, entry := range model.SplitEntries(content) {
		ev, ok := parseEvent(entry.Raw)
		if !ok || ev.Type != "codex_change" {
			continue
		}
		if ev.FilePath == "" || !e.opts.matchesFile(ev.FilePath) {
			continue
		}

		typ := model.ChangeType(ev.ChangeType)
		if !model.ValidChangeType(ev.ChangeType) {
			typ = e.classifier.Classify(ev.Content)
		}

		results = append(results, &model.ChangeRecord{
			Type:     typ,
			LogFile:  base,
			LineNum:  entry.Line,
			Content:  ev.Content,
			FilePath: ev.FilePath,
			RawMatch: entry.Raw,
		})
	}

	if e.opts.dedup {
		results = dedupe(results, func(c *model.ChangeRecord) string {
			return string(c.Type) + "\n" + c.FilePath + "\n" + c.Content
		})
	}
	return asRecords(results)
}
