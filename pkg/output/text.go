package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/codextrace/codextrace/pkg/diff"
	"github.com/codextrace/codextrace/pkg/model"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "codextrace: %d runs parsed, %d successful, %d failed files\n",
		report.Summary.TotalRuns,
		report.Summary.SuccessfulRuns,
		report.Summary.FailedFiles)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "=== Codex Session Report (%s) ===\n", report.Metadata.SessionID)
	fmt.Fprintln(w)

	for _, run := range report.Runs {
		f.formatRun(run, w)
	}

	if len(report.Failures) > 0 {
		fmt.Fprintln(w, "Failed files:")
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  - %s: %s\n", failure.LogFile, failure.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d runs, %d successful (%.0f%%), %d changes, %d patches, %d commands\n",
		report.Summary.TotalRuns,
		report.Summary.SuccessfulRuns,
		report.Summary.SuccessRate*100,
		report.Summary.TotalChanges,
		report.Summary.TotalPatches,
		report.Summary.TotalCommands)

	if len(report.Summary.FilesModified) > 0 {
		fmt.Fprintf(w, "Files modified: %d\n", len(report.Summary.FilesModified))
		if f.opts.Verbose {
			for _, file := range report.Summary.FilesModified {
				fmt.Fprintf(w, "  %s\n", file)
			}
		}
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}

func (f *TextFormatter) formatRun(run *model.RunResult, w io.Writer) {
	status := "FAILED"
	if run.Success {
		status = "OK"
	}
	fmt.Fprintf(w, "[%s] %s\n", status, run.RunID)

	if len(run.Patches) == 0 && len(run.Commands) == 0 && len(run.Tools) == 0 && len(run.Changes) == 0 {
		fmt.Fprintln(w, "  No activity detected")
		fmt.Fprintln(w)
		return
	}

	for _, patch := range run.Patches {
		fmt.Fprintf(w, "  patch  %s (+%d/-%d)\n", patch.FilePath, patch.LinesAdded, patch.LinesRemoved)
		if f.opts.Verbose && patch.DiffContent != "" {
			fmt.Fprintln(w, indent(patch.DiffContent, "    "))
		}
	}
	for _, change := range run.Changes {
		fmt.Fprintf(w, "  %-6s %s\n", change.Type, describeChange(change))
	}
	if f.opts.Verbose {
		for _, command := range run.Commands {
			fmt.Fprintf(w, "  cmd    %s\n", command.Command)
			if command.Output != "" {
				stdout, stderr := diff.SplitCommandOutput(command.Output)
				if stdout != "" {
					fmt.Fprintln(w, indent(stdout, "    "))
				}
				if stderr != "" {
					fmt.Fprintln(w, indent("stderr: "+stderr, "    "))
				}
			}
		}
		for _, tool := range run.Tools {
			fmt.Fprintf(w, "  tool   %s (%s)\n", tool.ToolName, tool.Type)
		}
	} else {
		fmt.Fprintf(w, "  %d command(s), %d tool call(s)\n", len(run.Commands), len(run.Tools))
	}

	fmt.Fprintln(w)
}

func describeChange(change *model.ChangeRecord) string {
	if change.FilePath != "" {
		return change.FilePath
	}
	return firstLine(change.Content)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
