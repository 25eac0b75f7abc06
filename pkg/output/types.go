// Package output provides report building and formatting for parsed
// codex sessions.
package output

import (
	"time"

	"github.com/codextrace/codextrace/pkg/model"
)

// Report is the complete session output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Runs contains one parsed result per log file.
	Runs []*model.RunResult `json:"runs"`

	// Failures lists log files that could not be parsed.
	Failures []model.ParseFailure `json:"failures,omitempty"`

	// Metadata provides context about the parse.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics across the session.
type Summary struct {
	// TotalRuns is the number of successfully parsed logs.
	TotalRuns int `json:"total_runs"`

	// SuccessfulRuns is the number of runs that produced changes.
	SuccessfulRuns int `json:"successful_runs"`

	// FailedFiles is the number of logs that could not be parsed.
	FailedFiles int `json:"failed_files"`

	// SuccessRate is the fraction of parsed runs that succeeded.
	SuccessRate float64 `json:"success_rate"`

	// FilesModified lists the unique files touched across all runs.
	FilesModified []string `json:"files_modified"`

	// TotalChanges is the change count across all runs.
	TotalChanges int `json:"total_changes"`

	// TotalPatches is the patch count across all runs.
	TotalPatches int `json:"total_patches"`

	// TotalCommands is the command count across all runs.
	TotalCommands int `json:"total_commands"`

	// ToolUsage maps tool names to invocation counts.
	ToolUsage map[string]int `json:"tool_usage,omitempty"`
}

// Metadata provides context about the parse.
type Metadata struct {
	// SessionID identifies the parsed session.
	SessionID string `json:"session_id"`

	// ParsedAt is when the parse completed.
	ParsedAt time.Time `json:"parsed_at"`

	// Duration is how long the parse took.
	Duration time.Duration `json:"duration"`
}

// BuildReport creates a Report from a session result.
func BuildReport(session *model.SessionResult) *Report {
	totalPatches := 0
	totalCommands := 0
	for _, run := range session.Runs {
		totalPatches += len(run.Patches)
		totalCommands += len(run.Commands)
	}

	return &Report{
		Runs:     session.Runs,
		Failures: session.Failures,
		Summary: Summary{
			TotalRuns:      len(session.Runs),
			SuccessfulRuns: len(session.SuccessfulRuns()),
			FailedFiles:    len(session.Failures),
			SuccessRate:    session.SuccessRate(),
			FilesModified:  session.TotalFilesModified(),
			TotalChanges:   session.TotalChanges(),
			TotalPatches:   totalPatches,
			TotalCommands:  totalCommands,
			ToolUsage:      session.ToolUsageCounts(),
		},
		Metadata: Metadata{
			SessionID: session.SessionID,
			ParsedAt:  session.EndTime,
			Duration:  session.EndTime.Sub(session.StartTime),
		},
	}
}

// HasFailures returns true when any log file could not be parsed.
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
