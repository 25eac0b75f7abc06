package output

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/codextrace/codextrace/pkg/model"
)

func sampleSession() *model.SessionResult {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.SessionResult{
		SessionID: "ab12cd34",
		StartTime: start,
		EndTime:   start.Add(2 * time.Second),
		Runs: []*model.RunResult{
			{
				RunID:   "codex_run_1.log",
				LogFile: "/logs/codex_run_1.log",
				Success: true,
				Patches: []*model.PatchRecord{
					model.NewPatchRecord("hello.py", "-old\n+new", "codex_run_1.log", 2, ""),
				},
				Commands: []*model.CommandRecord{
					{Command: "ls -la", LogFile: "codex_run_1.log", LineNum: 3, Output: "stdout: total 0 stderr: boom"},
				},
				Tools:   []*model.ToolUsageRecord{},
				Changes: []*model.ChangeRecord{},
			},
			{
				RunID:    "codex_run_2.log",
				LogFile:  "/logs/codex_run_2.log",
				Success:  false,
				Patches:  []*model.PatchRecord{},
				Commands: []*model.CommandRecord{},
				Tools:    []*model.ToolUsageRecord{},
				Changes:  []*model.ChangeRecord{},
			},
		},
		Failures: []model.ParseFailure{
			{LogFile: "/logs/codex_run_3.log", Reason: "content is not valid text"},
		},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(sampleSession())

	if report.Summary.TotalRuns != 2 {
		t.Errorf("TotalRuns = %d, want 2", report.Summary.TotalRuns)
	}
	if report.Summary.SuccessfulRuns != 1 {
		t.Errorf("SuccessfulRuns = %d, want 1", report.Summary.SuccessfulRuns)
	}
	if report.Summary.FailedFiles != 1 {
		t.Errorf("FailedFiles = %d, want 1", report.Summary.FailedFiles)
	}
	if report.Summary.SuccessRate != 0.5 {
		t.Errorf("SuccessRate = %v, want 0.5", report.Summary.SuccessRate)
	}
	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
}

func TestTextFormatter_Full(t *testing.T) {
	var sb strings.Builder
	f := NewTextFormatter(FormatOptions{})

	if err := f.Format(context.Background(), BuildReport(sampleSession()), &sb); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"[OK] codex_run_1.log",
		"[FAILED] codex_run_2.log",
		"hello.py (+1/-1)",
		"codex_run_3.log: content is not valid text",
		"Summary: 2 runs, 1 successful (50%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	var sb strings.Builder
	f := NewTextFormatter(FormatOptions{Quiet: true})

	if err := f.Format(context.Background(), BuildReport(sampleSession()), &sb); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "2 runs parsed, 1 successful, 1 failed files") {
		t.Errorf("quiet output = %q", out)
	}
	if strings.Contains(out, "codex_run_1.log") {
		t.Error("quiet output contains per-run detail")
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	var sb strings.Builder
	f := NewTextFormatter(FormatOptions{Verbose: true})

	if err := f.Format(context.Background(), BuildReport(sampleSession()), &sb); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "cmd    ls -la") {
		t.Errorf("verbose output missing command line:\n%s", out)
	}
	if !strings.Contains(out, "+new") {
		t.Errorf("verbose output missing diff body:\n%s", out)
	}
	if !strings.Contains(out, "total 0") {
		t.Errorf("verbose output missing command stdout:\n%s", out)
	}
	if !strings.Contains(out, "stderr: boom") {
		t.Errorf("verbose output missing command stderr:\n%s", out)
	}
}
