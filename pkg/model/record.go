package model

import (
	"github.com/codextrace/codextrace/pkg/diff"
)

// PatchRecord represents one detected file modification.
type PatchRecord struct {
	// FilePath is the file the patch applies to. Always non-empty.
	FilePath string

	// DiffContent is the textual diff body.
	DiffContent string

	// LogFile is the source log file (base name).
	LogFile string

	// LineNum is the 1-based line the patch was found on.
	LineNum int

	// LinesAdded and LinesRemoved are derived from DiffContent.
	LinesAdded   int
	LinesRemoved int

	// RawPatch is the original patch text before newline unescaping.
	RawPatch string
}

// NewPatchRecord builds a PatchRecord, computing diff stats from the body.
func NewPatchRecord(filePath, diffContent, logFile string, lineNum int, rawPatch string) *PatchRecord {
	added, removed := diff.Stats(diffContent)
	return &PatchRecord{
		FilePath:     filePath,
		DiffContent:  diffContent,
		LogFile:      logFile,
		LineNum:      lineNum,
		LinesAdded:   added,
		LinesRemoved: removed,
		RawPatch:     rawPatch,
	}
}

func (p *PatchRecord) Source() string { return p.LogFile }
func (p *PatchRecord) Line() int      { return p.LineNum }

// CommandRecord represents one command executed by the agent.
type CommandRecord struct {
	// Command is the command text. Always non-empty.
	Command string

	// LogFile is the source log file (base name).
	LogFile string

	// LineNum is the 1-based line the command was found on.
	LineNum int

	// ToolName is the tool that issued the command, if known.
	ToolName string

	// Arguments holds the invocation arguments as strings.
	Arguments map[string]string

	// Output is the captured command output, if any.
	Output string

	// ExitCode is the command exit status, nil when unknown.
	ExitCode *int

	// TargetFiles lists files referenced by the invocation arguments.
	TargetFiles []string
}

func (c *CommandRecord) Source() string { return c.LogFile }
func (c *CommandRecord) Line() int      { return c.LineNum }

// Successful reports whether the command exited zero. Unknown exit
// status counts as unsuccessful.
func (c *CommandRecord) Successful() bool {
	return c.ExitCode != nil && *c.ExitCode == 0
}

// ToolUsageRecord represents one invocation of a named tool.
type ToolUsageRecord struct {
	// ToolName is the invoked tool. Always non-empty.
	ToolName string

	// Type is the categorized tool type.
	Type ToolType

	// LogFile is the source log file (base name).
	LogFile string

	// LineNum is the 1-based line the invocation was found on.
	LineNum int

	// TargetFile is the file the tool operated on, if any.
	TargetFile string

	// Arguments holds the invocation arguments as strings.
	Arguments map[string]string
}

func (t *ToolUsageRecord) Source() string { return t.LogFile }
func (t *ToolUsageRecord) Line() int      { return t.LineNum }

// ChangeRecord is a generic detected change with a classified type.
type ChangeRecord struct {
	// Type is the classified change type.
	Type ChangeType

	// LogFile is the source log file (base name).
	LogFile string

	// LineNum is the 1-based line the change was found on.
	LineNum int

	// Content is the matched text span.
	Content string

	// FilePath is the affected file, if the change names one.
	FilePath string

	// RawMatch is the full original match.
	RawMatch string
}

func (c *ChangeRecord) Source() string { return c.LogFile }
func (c *ChangeRecord) Line() int      { return c.LineNum }

// DiscoveredTool records one tool invocation seen during tool discovery.
type DiscoveredTool struct {
	// ToolName is the invoked tool.
	ToolName string

	// Invocation is the raw argument payload.
	Invocation string

	// Kind is the invocation kind (function_call, tool_use, tool_call).
	Kind string

	// LogFile is the source log file (base name).
	LogFile string

	// LineNum is the 1-based line of the invocation.
	LineNum int
}

func (d *DiscoveredTool) Source() string { return d.LogFile }
func (d *DiscoveredTool) Line() int      { return d.LineNum }
