package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// DiscoverLogs returns the files in dir matching the glob pattern, in
// lexical path order. Lexical ordering keeps session run order
// deterministic across invocations (note: run_10 sorts before run_2).
func DiscoverLogs(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid log pattern %q: %w", pattern, err)
	}

	seen := make(map[string]bool, len(matches))
	files := matches[:0:0]
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}
