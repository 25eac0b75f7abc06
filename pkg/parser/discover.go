package parser

import (
	"context"
	"sort"

	"github.com/codextrace/codextrace/pkg/extract"
	"github.com/codextrace/codextrace/pkg/model"
)

const (
	maxToolExamples      = 5
	maxToolExampleLength = 150
)

// ToolSummary aggregates the invocations of one tool across a session.
type ToolSummary struct {
	// Count is the total number of invocations.
	Count int

	// Kinds lists the invocation kinds seen, sorted.
	Kinds []string

	// Examples holds up to five distinct invocation payloads, sorted,
	// truncated for display.
	Examples []string
}

// DiscoverTools scans all discovered logs and summarizes every tool the
// agent invoked. Unreadable files are skipped.
func (p *Parser) DiscoverTools(ctx context.Context) (map[string]ToolSummary, error) {
	files, err := p.LogFiles()
	if err != nil {
		return nil, err
	}

	extractor := extract.NewToolDiscoveryExtractor()
	kinds := make(map[string]map[string]bool)
	examples := make(map[string]map[string]bool)
	summaries := make(map[string]ToolSummary)

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		content, err := readLogFile(file)
		if err != nil {
			p.logger.Warn().Str("log_file", file).Err(err).Msg("skipping unparseable log file")
			continue
		}

		for _, rec := range extractor.Extract(file, content) {
			tool, ok := rec.(*model.DiscoveredTool)
			if !ok {
				continue
			}
			name := tool.ToolName

			summary := summaries[name]
			summary.Count++
			summaries[name] = summary

			if kinds[name] == nil {
				kinds[name] = make(map[string]bool)
				examples[name] = make(map[string]bool)
			}
			kinds[name][tool.Kind] = true
			if tool.Invocation != "" && len(examples[name]) < maxToolExamples {
				examples[name][truncate(tool.Invocation, maxToolExampleLength)] = true
			}
		}
	}

	for name, summary := range summaries {
		summary.Kinds = sortedSet(kinds[name])
		summary.Examples = sortedSet(examples[name])
		summaries[name] = summary
	}
	return summaries, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
