package extract

import (
	"testing"

	"github.com/codextrace/codextrace/pkg/model"
)

const shellCommandLine = `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"ls\",\"-la\"]}"}`

func TestCommandExtractor_ShellCommand(t *testing.T) {
	e := NewCommandExtractor()

	records := e.Extract("/logs/run.log", shellCommandLine)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	command := records[0].(*model.CommandRecord)
	if command.Command != "ls -la" {
		t.Errorf("Command = %q, want %q", command.Command, "ls -la")
	}
	if command.ToolName != "shell" {
		t.Errorf("ToolName = %q, want %q", command.ToolName, "shell")
	}
	if command.LogFile != "run.log" {
		t.Errorf("LogFile = %q, want %q", command.LogFile, "run.log")
	}
}

func TestCommandExtractor_TargetFiles(t *testing.T) {
	e := NewCommandExtractor()

	line := `{"type":"tool_call","name":"edit_file","arguments":"{\"command\":\"edit\",\"target_file\":\"main.go\"}"}`
	records := e.Extract("run.log", line)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	command := records[0].(*model.CommandRecord)
	if len(command.TargetFiles) != 1 || command.TargetFiles[0] != "main.go" {
		t.Errorf("TargetFiles = %v, want [main.go]", command.TargetFiles)
	}
}

func TestCommandExtractor_ExitCode(t *testing.T) {
	e := NewCommandExtractor()

	line := `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"true\"]}","exit_code":0}`
	records := e.Extract("run.log", line)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	command := records[0].(*model.CommandRecord)
	if !command.Successful() {
		t.Error("Successful() = false for exit code 0")
	}
}

func TestCommandExtractor_DedupToggle(t *testing.T) {
	content := shellCommandLine + "\n" + shellCommandLine

	// Duplicates preserved by default, each at its own position.
	plain := NewCommandExtractor().Extract("run.log", content)
	if len(plain) != 2 {
		t.Fatalf("Extract() returned %d records, want 2", len(plain))
	}
	if plain[0].Line() == plain[1].Line() {
		t.Error("duplicate records share a position, want distinct line numbers")
	}
	if plain[0].Line() != 1 || plain[1].Line() != 2 {
		t.Errorf("positions = %d, %d, want 1, 2", plain[0].Line(), plain[1].Line())
	}

	// With deduplication only the first occurrence survives.
	deduped := NewCommandExtractor(WithDedup()).Extract("run.log", content)
	if len(deduped) != 1 {
		t.Fatalf("Extract() with dedup returned %d records, want 1", len(deduped))
	}
	if deduped[0].Line() != 1 {
		t.Errorf("deduped position = %d, want 1 (first occurrence)", deduped[0].Line())
	}
}

func TestCommandExtractor_SkipsNonCallLines(t *testing.T) {
	e := NewCommandExtractor()

	records := e.Extract("run.log", "plain text line\n{\"type\":\"other\"}")
	if len(records) != 0 {
		t.Errorf("Extract() returned %d records, want 0", len(records))
	}
}
