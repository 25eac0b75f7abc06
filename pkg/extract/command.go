package extract

import (
	"path/filepath"
	"strings"

	"github.com/codextrace/codextrace/pkg/model"
)

// CommandExtractor extracts command executions from tool-call log events.
type CommandExtractor struct {
	opts options
}

// NewCommandExtractor creates a command extractor.
func NewCommandExtractor(opts ...Option) *CommandExtractor {
	return &CommandExtractor{opts: buildOptions(opts)}
}

// Category returns "command".
func (e *CommandExtractor) Category() string { return "command" }

// Extract returns one CommandRecord per tool call carrying a command.
func (e *CommandExtractor) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.CommandRecord

	for _, entry := range model.SplitEntries(content) {
		if !hasCallKeyword(entry.Raw) {
			continue
		}
		ev, ok := parseEvent(entry.Raw)
		if !ok || len(ev.Arguments) == 0 {
			continue
		}

		var command string
		var arguments map[string]string
		var targets []string
		if args, ok := ev.argsMap(); ok {
			command = commandText(args)
			arguments = stringifyArgs(args)
			targets = targetFiles(args)
		} else {
			// Arguments that are not an object are taken verbatim.
			command = strings.TrimSpace(ev.rawArguments())
		}
		if command == "" {
			continue
		}

		results = append(results, &model.CommandRecord{
			Command:     command,
			LogFile:     base,
			LineNum:     entry.Line,
			ToolName:    ev.Name,
			Arguments:   arguments,
			Output:      ev.Output,
			ExitCode:    ev.ExitCode,
			TargetFiles: targets,
		})
	}

	if e.opts.dedup {
		results = dedupe(results, func(c *model.CommandRecord) string {
			return c.Command
		})
	}
	return asRecords(results)
}
