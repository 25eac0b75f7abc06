// Package diff provides helpers for inspecting unified diffs and command
// output transcripts found in codex logs.
package diff

import (
	"regexp"
	"strings"
)

var headerPattern = regexp.MustCompile(`(?m)^--- (?:a/)?(.+)\n\+\+\+ (?:b/)?(.+)$`)

// Stats counts added and removed lines in a diff body. File headers
// (+++/---) are not counted.
func Stats(diff string) (added, removed int) {
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

// IsUnifiedDiff reports whether s contains a unified diff file header.
func IsUnifiedDiff(s string) bool {
	return headerPattern.MatchString(s)
}

// FilePaths extracts the original and modified file paths from a unified
// diff header. Both are empty when no header is present.
func FilePaths(diff string) (original, modified string) {
	m := headerPattern.FindStringSubmatch(diff)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// SplitCommandOutput splits a command transcript of the form
// "stdout: ... stderr: ..." into its two streams. Text without stream
// prefixes is treated as stdout.
func SplitCommandOutput(output string) (stdout, stderr string) {
	if idx := strings.Index(output, "stderr:"); idx >= 0 {
		stdout = output[:idx]
		stderr = strings.TrimSpace(output[idx+len("stderr:"):])
		stdout = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stdout), "stdout:"))
		return stdout, stderr
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(output), "stdout:")), ""
}
