package parser

import (
	"os"
	"regexp"
	"time"
)

// startTimeFormats are the timestamp shapes recognized in log content,
// paired with their parse layouts.
var startTimeFormats = []struct {
	pattern *regexp.Regexp
	layout  string
}{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`), "2006-01-02 15:04:05"},
	{regexp.MustCompile(`\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}`), "2006/01/02 15:04:05"},
}

// detectStartTime finds the first recognizable timestamp in log content.
// Falls back to the file modification time, then to now.
func detectStartTime(content, path string) time.Time {
	for _, f := range startTimeFormats {
		match := f.pattern.FindString(content)
		if match == "" {
			continue
		}
		// Normalize the ISO "T" separator to the space layout.
		if len(match) > 10 && match[10] == 'T' {
			match = match[:10] + " " + match[11:]
		}
		if ts, err := time.Parse(f.layout, match); err == nil {
			return ts
		}
	}

	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Now()
}
