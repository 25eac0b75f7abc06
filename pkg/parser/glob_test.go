package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverLogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"codex_run_2.log", "codex_run_1.log", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := DiscoverLogs(dir, DefaultLogPattern)
	if err != nil {
		t.Fatalf("DiscoverLogs() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("DiscoverLogs() returned %d files, want 2", len(files))
	}
	if filepath.Base(files[0]) != "codex_run_1.log" || filepath.Base(files[1]) != "codex_run_2.log" {
		t.Errorf("DiscoverLogs() = %v, want lexical order", files)
	}
}

func TestDiscoverLogs_NoMatches(t *testing.T) {
	files, err := DiscoverLogs(t.TempDir(), DefaultLogPattern)
	if err != nil {
		t.Fatalf("DiscoverLogs() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("DiscoverLogs() returned %d files, want 0", len(files))
	}
}

func TestDiscoverLogs_InvalidPattern(t *testing.T) {
	_, err := DiscoverLogs(t.TempDir(), "[invalid")
	if err == nil {
		t.Error("DiscoverLogs() expected error for invalid pattern")
	}
}

func TestDiscoverLogs_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "agent_7.log"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverLogs(dir, "agent_*.log")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("DiscoverLogs() returned %d files, want 1", len(files))
	}
}
