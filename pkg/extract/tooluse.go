package extract

import (
	"path/filepath"

	"github.com/codextrace/codextrace/pkg/model"
)

// ToolUsageExtractor extracts named tool invocations from log events.
type ToolUsageExtractor struct {
	opts options
}

// NewToolUsageExtractor creates a tool usage extractor.
func NewToolUsageExtractor(opts ...Option) *ToolUsageExtractor {
	return &ToolUsageExtractor{opts: buildOptions(opts)}
}

// Category returns "tool_use".
func (e *ToolUsageExtractor) Category() string { return "tool_use" }

// Extract returns one ToolUsageRecord per named tool invocation.
func (e *ToolUsageExtractor) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.ToolUsageRecord

	for _, entry := range model.SplitEntries(content) {
		if !hasCallKeyword(entry.Raw) {
			continue
		}
		ev, ok := parseEvent(entry.Raw)
		if !ok || ev.Name == "" {
			continue
		}

		var arguments map[string]string
		var target string
		if args, ok := ev.argsMap(); ok {
			arguments = stringifyArgs(args)
			if files := targetFiles(args); len(files) > 0 {
				target = files[0]
			}
		}
		if target != "" && !e.opts.matchesFile(target) {
			continue
		}

		results = append(results, &model.ToolUsageRecord{
			ToolName:   ev.Name,
			Type:       model.ClassifyTool(ev.Name),
			LogFile:    base,
			LineNum:    entry.Line,
			TargetFile: target,
			Arguments:  arguments,
		})
	}

	if e.opts.dedup {
		results = dedupe(results, func(t *model.ToolUsageRecord) string {
			return t.ToolName + "\n" + t.TargetFile
		})
	}
	return asRecords(results)
}
