package output

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter_Full(t *testing.T) {
	var sb strings.Builder
	f := NewJSONFormatter(FormatOptions{})

	if err := f.Format(context.Background(), BuildReport(sampleSession()), &sb); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["summary"]; !ok {
		t.Error("JSON output missing summary")
	}
	if _, ok := decoded["runs"]; !ok {
		t.Error("JSON output missing runs")
	}
}

func TestJSONFormatter_Quiet(t *testing.T) {
	var sb strings.Builder
	f := NewJSONFormatter(FormatOptions{Quiet: true})

	if err := f.Format(context.Background(), BuildReport(sampleSession()), &sb); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	summary, ok := decoded["summary"].(map[string]any)
	if !ok {
		t.Fatal("quiet JSON output missing summary")
	}
	if _, ok := summary["total_runs"]; !ok {
		t.Error("quiet JSON summary missing total_runs")
	}
	failures, ok := decoded["failures"].([]any)
	if !ok || len(failures) != 1 {
		t.Errorf("quiet JSON output failures = %v, want 1 entry", decoded["failures"])
	}
	if _, ok := decoded["runs"]; ok {
		t.Error("quiet JSON output contains runs")
	}
}
