package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codextrace/codextrace/pkg/model"
)

// patchPattern matches a delimited patch body: the file header through the
// closing End Patch marker.
var patchPattern = regexp.MustCompile(`(?is)Update File:\s*(.*?)\s*@@.*?@@\s*(.*?)\*\*\* End Patch`)

// patchFallback captures from the file header to end of text, used when the
// End Patch terminator is missing. Best-effort: the match is still emitted.
var patchFallback = regexp.MustCompile(`(?is)Update File:\s*([^\n]+)\n?(.*)$`)

// PatchExtractor extracts patch bodies from apply_patch shell invocations.
type PatchExtractor struct {
	opts options
}

// NewPatchExtractor creates a patch extractor.
func NewPatchExtractor(opts ...Option) *PatchExtractor {
	return &PatchExtractor{opts: buildOptions(opts)}
}

// Category returns "patch".
func (e *PatchExtractor) Category() string { return "patch" }

// Extract returns one PatchRecord per apply_patch invocation found.
func (e *PatchExtractor) Extract(logFile, content string) []model.Record {
	base := filepath.Base(logFile)
	var results []*model.PatchRecord

	for _, entry := range model.SplitEntries(content) {
		ev, ok := parseEvent(entry.Raw)
		if !ok || ev.Name != "shell" {
			continue
		}
		args, ok := ev.argsMap()
		if !ok {
			continue
		}
		argv, ok := args["command"].([]any)
		if !ok || len(argv) < 2 {
			continue
		}
		if name, _ := argv[0].(string); name != "apply_patch" {
			continue
		}
		raw, ok := argv[1].(string)
		if !ok {
			continue
		}

		// Patch bodies arrive with escaped newlines from the double
		// JSON encoding.
		text := strings.ReplaceAll(raw, `\n`, "\n")

		path, body := matchPatch(text)
		if path == "" || !e.opts.matchesFile(path) {
			continue
		}
		results = append(results, model.NewPatchRecord(path, body, base, entry.Line, raw))
	}

	if e.opts.dedup {
		results = dedupe(results, func(p *model.PatchRecord) string {
			return p.FilePath + "\n" + p.DiffContent
		})
	}
	return asRecords(results)
}

// matchPatch extracts the file path and diff body from patch text. When the
// End Patch terminator is missing the body extends to end of text.
func matchPatch(text string) (path, body string) {
	if m := patchPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := patchFallback.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", ""
}
