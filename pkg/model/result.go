package model

import (
	"sort"
	"time"
)

// RunResult aggregates everything extracted from one log file. It is built
// once per parse and not mutated afterwards.
type RunResult struct {
	// RunID identifies the run (defaults to the log file base name).
	RunID string

	// LogFile is the path of the parsed log.
	LogFile string

	// StartTime is the run start, best-effort from log content or file mtime.
	StartTime time.Time

	// EndTime is when parsing observed the run as finished (zero if unknown).
	EndTime time.Time

	// Success is true when the run produced patches or detected changes.
	Success bool

	// Patches, Commands, Tools, and Changes are ordered by first appearance.
	// All are non-nil after construction, even when empty.
	Patches  []*PatchRecord
	Commands []*CommandRecord
	Tools    []*ToolUsageRecord
	Changes  []*ChangeRecord
}

// Duration returns the run duration, zero when the end time is unknown.
func (r *RunResult) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// FilesModified returns the sorted unique files touched by patches,
// changes, and tool usage.
func (r *RunResult) FilesModified() []string {
	seen := make(map[string]bool)
	for _, p := range r.Patches {
		seen[p.FilePath] = true
	}
	for _, c := range r.Changes {
		if c.FilePath != "" {
			seen[c.FilePath] = true
		}
	}
	for _, t := range r.Tools {
		if t.TargetFile != "" {
			seen[t.TargetFile] = true
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// ChangesByType returns changes matching the given type.
func (r *RunResult) ChangesByType(t ChangeType) []*ChangeRecord {
	var out []*ChangeRecord
	for _, c := range r.Changes {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ToolsByType returns tool usage matching the given tool type.
func (r *RunResult) ToolsByType(t ToolType) []*ToolUsageRecord {
	var out []*ToolUsageRecord
	for _, u := range r.Tools {
		if u.Type == t {
			out = append(out, u)
		}
	}
	return out
}

// ParseFailure records one log file that could not be parsed.
type ParseFailure struct {
	// LogFile is the path of the failed file.
	LogFile string

	// Reason is a human-readable failure description.
	Reason string
}

// SessionResult aggregates the runs of one parsed session. It is mutated
// only while the parser builds it, then read-only.
type SessionResult struct {
	// SessionID identifies the session.
	SessionID string

	// Runs holds one result per successfully parsed log, in lexical
	// path order of the source files.
	Runs []*RunResult

	// Failures lists files that could not be parsed.
	Failures []ParseFailure

	// StartTime and EndTime bound the parse.
	StartTime time.Time
	EndTime   time.Time
}

// TotalFilesModified returns the sorted unique files modified across all runs.
func (s *SessionResult) TotalFilesModified() []string {
	seen := make(map[string]bool)
	for _, run := range s.Runs {
		for _, f := range run.FilesModified() {
			seen[f] = true
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// TotalChanges returns the change count across all runs.
func (s *SessionResult) TotalChanges() int {
	total := 0
	for _, run := range s.Runs {
		total += len(run.Changes)
	}
	return total
}

// SuccessfulRuns returns only the runs marked successful.
func (s *SessionResult) SuccessfulRuns() []*RunResult {
	var out []*RunResult
	for _, run := range s.Runs {
		if run.Success {
			out = append(out, run)
		}
	}
	return out
}

// SuccessRate returns the fraction of parsed runs that succeeded,
// zero when the session has no runs.
func (s *SessionResult) SuccessRate() float64 {
	if len(s.Runs) == 0 {
		return 0
	}
	return float64(len(s.SuccessfulRuns())) / float64(len(s.Runs))
}

// RunsByFile returns the runs that modified the given file.
func (s *SessionResult) RunsByFile(path string) []*RunResult {
	var out []*RunResult
	for _, run := range s.Runs {
		for _, f := range run.FilesModified() {
			if f == path {
				out = append(out, run)
				break
			}
		}
	}
	return out
}

// ToolUsageCounts returns invocation counts per tool name across all runs.
func (s *SessionResult) ToolUsageCounts() map[string]int {
	counts := make(map[string]int)
	for _, run := range s.Runs {
		for _, t := range run.Tools {
			counts[t.ToolName]++
		}
	}
	return counts
}
