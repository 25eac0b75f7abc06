package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// logEvent is one decoded JSON log line. Codex logs are JSON-lines: each
// line is a standalone object describing a tool call, patch application,
// or detected change.
type logEvent struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Arguments  json.RawMessage `json:"arguments"`
	ChangeType string          `json:"change_type"`
	FilePath   string          `json:"file_path"`
	Content    string          `json:"content"`
	Output     string          `json:"output"`
	ExitCode   *int            `json:"exit_code"`
}

var callKeywords = []string{"function_call", "tool_use", "tool_call"}

// hasCallKeyword is a cheap pre-filter applied before JSON decoding.
func hasCallKeyword(line string) bool {
	for _, kw := range callKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// parseEvent decodes a log line into an event. Non-JSON lines are skipped.
func parseEvent(line string) (*logEvent, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] != '{' {
		return nil, false
	}
	var ev logEvent
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return nil, false
	}
	return &ev, true
}

// argsMap decodes the event arguments, which may be a JSON object or a
// JSON-encoded string holding one.
func (e *logEvent) argsMap() (map[string]any, bool) {
	if len(e.Arguments) == 0 {
		return nil, false
	}
	raw := e.Arguments
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// rawArguments returns the argument payload as a display string.
func (e *logEvent) rawArguments() string {
	var encoded string
	if err := json.Unmarshal(e.Arguments, &encoded); err == nil {
		return encoded
	}
	return string(e.Arguments)
}

// kind returns the invocation kind, defaulting to function_call when the
// event type is not one of the known call markers.
func (e *logEvent) kind() string {
	for _, kw := range callKeywords {
		if e.Type == kw {
			return kw
		}
	}
	return "function_call"
}

// stringifyArgs flattens argument values to strings for record storage.
func stringifyArgs(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = stringifyValue(v)
	}
	return out
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// fileArgKeys are the argument names that carry file paths, checked in order.
var fileArgKeys = []string{"target_file", "file_path", "filename", "path"}

// targetFiles collects file paths from the known file-name argument keys.
func targetFiles(m map[string]any) []string {
	var files []string
	for _, key := range fileArgKeys {
		if v, ok := m[key].(string); ok && v != "" {
			files = append(files, v)
		}
	}
	return files
}

// commandText extracts the command from arguments. Shell invocations carry
// the command as an argv array; other tools as a plain string.
func commandText(m map[string]any) string {
	switch cmd := m["command"].(type) {
	case string:
		return cmd
	case []any:
		parts := make([]string, 0, len(cmd))
		for _, p := range cmd {
			parts = append(parts, stringifyValue(p))
		}
		return strings.Join(parts, " ")
	}
	return ""
}
