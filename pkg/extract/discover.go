package extract

import (
	"path/filepath"

	"github.com/codextrace/codextrace/pkg/model"
)

// ToolDiscoveryExtractor records every named tool invocation, regardless of
// tool type. It backs session-level tool discovery.
type ToolDiscoveryExtractor struct{}

// NewToolDiscoveryExtractor creates a tool discovery extractor.
func NewToolDiscoveryExtractor() *ToolDiscoveryExtractor {
	return &ToolDiscoveryExtractor{}
}

// Category returns "tool_discovery".
func (e *ToolDiscoveryExtractor) Category() string { return "tool_discovery" }

// Extract returns one DiscoveredTool per named tool call.
func (e *ToolDiscoveryExtractor) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.DiscoveredTool

	for _, entry := range model.SplitEntries(content) {
		if !hasCallKeyword(entry.Raw) {
			continue
		}
		ev, ok := parseEvent(entry.Raw)
		if !ok || ev.Name == "" || len(ev.Arguments) == 0 {
			continue
		}
		results = append(results, &model.DiscoveredTool{
			ToolName:   ev.Name,
			Invocation: ev.rawArguments(),
			Kind:       ev.kind(),
			LogFile:    base,
			LineNum:    entry.Line,
		})
	}
	return asRecords(results)
}
