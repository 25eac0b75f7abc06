package extract

import (
	"testing"

	"github.com/codextrace/codextrace/pkg/model"
)

const applyPatchLine = `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"apply_patch\",\"*** Begin Patch\\n*** Update File: hello.py\\n@@ -1 +1 @@\\n-print('a')\\n+print('b')\\n*** End Patch\"]}"}`

const applyPatchNoTerminator = `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"apply_patch\",\"*** Begin Patch\\n*** Update File: broken.py\\n@@ -1 +1 @@\\n-x\\n+y\"]}"}`

func TestPatchExtractor_ApplyPatch(t *testing.T) {
	e := NewPatchExtractor()

	records := e.Extract("/logs/codex_run_1.log", applyPatchLine)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	patch := records[0].(*model.PatchRecord)
	if patch.FilePath != "hello.py" {
		t.Errorf("FilePath = %q, want %q", patch.FilePath, "hello.py")
	}
	if patch.LogFile != "codex_run_1.log" {
		t.Errorf("LogFile = %q, want %q", patch.LogFile, "codex_run_1.log")
	}
	if patch.LinesAdded != 1 || patch.LinesRemoved != 1 {
		t.Errorf("diff stats = +%d/-%d, want +1/-1", patch.LinesAdded, patch.LinesRemoved)
	}
	if patch.LineNum != 1 {
		t.Errorf("LineNum = %d, want 1", patch.LineNum)
	}
}

func TestPatchExtractor_MissingTerminatorStillEmitted(t *testing.T) {
	e := NewPatchExtractor()

	// Boundary detection is best-effort: without the End Patch marker the
	// capture extends to end of text and the record is still emitted.
	records := e.Extract("run.log", applyPatchNoTerminator)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	patch := records[0].(*model.PatchRecord)
	if patch.FilePath != "broken.py" {
		t.Errorf("FilePath = %q, want %q", patch.FilePath, "broken.py")
	}
	if patch.DiffContent == "" {
		t.Error("DiffContent is empty, want capture to end of text")
	}
}

func TestPatchExtractor_TruncatedAfterHeaderStillEmitted(t *testing.T) {
	e := NewPatchExtractor()

	// A log cut off right after the file header has no body at all. The
	// record is still emitted, with an empty diff.
	line := `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"apply_patch\",\"*** Begin Patch\\n*** Update File: cut.py\"]}"}`
	records := e.Extract("run.log", line)
	if len(records) != 1 {
		t.Fatalf("Extract() returned %d records, want 1", len(records))
	}

	patch := records[0].(*model.PatchRecord)
	if patch.FilePath != "cut.py" {
		t.Errorf("FilePath = %q, want %q", patch.FilePath, "cut.py")
	}
	if patch.DiffContent != "" {
		t.Errorf("DiffContent = %q, want empty", patch.DiffContent)
	}
}

func TestPatchExtractor_IgnoresOtherShellCommands(t *testing.T) {
	e := NewPatchExtractor()

	line := `{"type":"function_call","name":"shell","arguments":"{\"command\":[\"ls\",\"-la\"]}"}`
	records := e.Extract("run.log", line)
	if len(records) != 0 {
		t.Errorf("Extract() returned %d records, want 0", len(records))
	}
}

func TestPatchExtractor_EmptyInput(t *testing.T) {
	e := NewPatchExtractor()

	records := e.Extract("run.log", "")
	if len(records) != 0 {
		t.Errorf("Extract() returned %d records, want 0", len(records))
	}
}

func TestPatchExtractor_Dedup(t *testing.T) {
	e := NewPatchExtractor(WithDedup())

	content := applyPatchLine + "\n" + applyPatchLine
	records := e.Extract("run.log", content)
	if len(records) != 1 {
		t.Errorf("Extract() with dedup returned %d records, want 1", len(records))
	}
}
