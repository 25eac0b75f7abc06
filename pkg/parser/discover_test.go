package parser

import (
	"context"
	"testing"
)

func TestDiscoverTools(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "codex_run_1.log", `{"type":"tool_use","name":"edit_file","arguments":"{\"target_file\":\"a.go\"}"}
{"type":"tool_use","name":"edit_file","arguments":"{\"target_file\":\"b.go\"}"}
{"type":"function_call","name":"shell","arguments":"{\"command\":[\"ls\"]}"}
`)

	p, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	tools, err := p.DiscoverTools(context.Background())
	if err != nil {
		t.Fatalf("DiscoverTools() error = %v", err)
	}

	if len(tools) != 2 {
		t.Fatalf("DiscoverTools() returned %d tools, want 2", len(tools))
	}

	editFile, ok := tools["edit_file"]
	if !ok {
		t.Fatal("DiscoverTools() missing edit_file")
	}
	if editFile.Count != 2 {
		t.Errorf("edit_file count = %d, want 2", editFile.Count)
	}
	if len(editFile.Examples) != 2 {
		t.Errorf("edit_file examples = %d, want 2", len(editFile.Examples))
	}
	if len(editFile.Kinds) != 1 || editFile.Kinds[0] != "tool_use" {
		t.Errorf("edit_file kinds = %v, want [tool_use]", editFile.Kinds)
	}
}

func TestDiscoverTools_SkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "codex_run_1.log", `{"type":"tool_use","name":"edit_file","arguments":"{}"}`)
	writeLog(t, dir, "codex_run_2.log", string([]byte{0x00, 0xff}))

	p, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	tools, err := p.DiscoverTools(context.Background())
	if err != nil {
		t.Fatalf("DiscoverTools() error = %v", err)
	}
	if len(tools) != 1 {
		t.Errorf("DiscoverTools() returned %d tools, want 1", len(tools))
	}
}
