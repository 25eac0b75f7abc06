// Package model defines the typed records produced by parsing codex run logs.
package model

import "strings"

// ChangeType categorizes a detected change.
type ChangeType string

const (
	ChangePatch           ChangeType = "patch"
	ChangeCommand         ChangeType = "command"
	ChangeToolUse         ChangeType = "tool_use"
	ChangeError           ChangeType = "error"
	ChangeCreation        ChangeType = "creation"
	ChangeModification    ChangeType = "modification"
	ChangeChangesDetected ChangeType = "changes_detected"
	ChangeCustom          ChangeType = "custom"
	ChangeUnknown         ChangeType = "unknown"
)

// ValidChangeType reports whether s names a known change type.
func ValidChangeType(s string) bool {
	switch ChangeType(s) {
	case ChangePatch, ChangeCommand, ChangeToolUse, ChangeError,
		ChangeCreation, ChangeModification, ChangeChangesDetected,
		ChangeCustom, ChangeUnknown:
		return true
	}
	return false
}

// ToolType categorizes a tool by the kind of operation it performs.
type ToolType string

const (
	ToolEdit    ToolType = "edit"
	ToolRead    ToolType = "read"
	ToolSearch  ToolType = "search"
	ToolList    ToolType = "list"
	ToolDelete  ToolType = "delete"
	ToolRun     ToolType = "run"
	ToolCreate  ToolType = "create"
	ToolWeb     ToolType = "web"
	ToolUnknown ToolType = "unknown"
)

// toolKeywords maps tool-name keywords to tool types. Evaluated in order;
// the first matching group wins.
var toolKeywords = []struct {
	words []string
	typ   ToolType
}{
	{[]string{"edit", "write", "modify", "update"}, ToolEdit},
	{[]string{"read", "cat", "view", "show"}, ToolRead},
	{[]string{"search", "grep", "find", "query"}, ToolSearch},
	{[]string{"list", "ls", "dir", "tree"}, ToolList},
	{[]string{"delete", "remove", "rm"}, ToolDelete},
	{[]string{"run", "exec", "command", "terminal"}, ToolRun},
	{[]string{"create", "new", "make", "mkdir"}, ToolCreate},
	{[]string{"web", "browser", "http", "url"}, ToolWeb},
}

// ClassifyTool categorizes a tool by its name.
func ClassifyTool(name string) ToolType {
	lower := strings.ToLower(name)
	for _, group := range toolKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.typ
			}
		}
	}
	return ToolUnknown
}

// LogEntry is one raw line of log text with its 1-based position.
type LogEntry struct {
	// Line is the 1-based line number in the source log.
	Line int

	// Raw is the original line content.
	Raw string
}

// SplitEntries splits raw log content into ordered entries.
func SplitEntries(content string) []LogEntry {
	lines := strings.Split(content, "\n")
	entries := make([]LogEntry, len(lines))
	for i, line := range lines {
		entries[i] = LogEntry{Line: i + 1, Raw: line}
	}
	return entries
}

// Record is implemented by every extracted record type. Records reference
// their originating log position; they never own the log entry itself.
type Record interface {
	// Source returns the log file the record was extracted from.
	Source() string

	// Line returns the 1-based line number of the match.
	Line() int
}
