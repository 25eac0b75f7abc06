package extract

import (
	"testing"

	"github.com/codextrace/codextrace/pkg/model"
)

func TestChangeDetector_DeclaredType(t *testing.T) {
	e := NewChangeDetector(nil)

	line := `{"type":"codex_change","change_type":"modification","file_path":"app.py","content":"updated handler"}`
	records := e.Extract("run.log", line)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	change := records[0].(*model.ChangeRecord)
	if change.Type != model.ChangeModification {
		t.Errorf("Type = %q, want %q", change.Type, model.ChangeModification)
	}
	if change.FilePath != "app.py" {
		t.Errorf("FilePath = %q, want %q", change.FilePath, "app.py")
	}
}

func TestChangeDetector_UnknownTypeIsClassified(t *testing.T) {
	e := NewChangeDetector(nil)

	// The declared type is not in the enum, so the content is classified.
	line := `{"type":"codex_change","change_type":"bogus","file_path":"app.py","content":"traceback in request handler"}`
	records := e.Extract("run.log", line)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	change := records[0].(*model.ChangeRecord)
	if change.Type != model.ChangeError {
		t.Errorf("Type = %q, want %q", change.Type, model.ChangeError)
	}
}

func TestChangeDetector_RequiresFilePath(t *testing.T) {
	e := NewChangeDetector(nil)

	records := e.Extract("run.log", `{"type":"codex_change","change_type":"modification","content":"no file"}`)
	if len(records) != 0 {
		t.Errorf("Extract() returned %d records, want 0", len(records))
	}
}

func TestChangeDetector_IgnoresOtherEvents(t *testing.T) {
	e := NewChangeDetector(nil)

	records := e.Extract("run.log", `{"type":"function_call","name":"shell"}`)
	if len(records) != 0 {
		t.Errorf("Extract() returned %d records, want 0", len(records))
	}
}
