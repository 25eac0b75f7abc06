package parser

import (
	"strings"

	"github.com/codextrace/codextrace/pkg/model"
)

// FilterByExtension returns the runs that touched a file with the given
// extension. The input is not mutated.
func FilterByExtension(runs []*model.RunResult, ext string) []*model.RunResult {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var out []*model.RunResult
	for _, run := range runs {
		for _, f := range run.FilesModified() {
			if strings.HasSuffix(f, ext) {
				out = append(out, run)
				break
			}
		}
	}
	return out
}

// FilterByChangeType returns the runs containing at least one change of the
// given type. The input is not mutated.
func FilterByChangeType(runs []*model.RunResult, t model.ChangeType) []*model.RunResult {
	var out []*model.RunResult
	for _, run := range runs {
		if len(run.ChangesByType(t)) > 0 {
			out = append(out, run)
		}
	}
	return out
}

// FilterBySuccess returns the runs whose success flag matches ok. The input
// is not mutated.
func FilterBySuccess(runs []*model.RunResult, ok bool) []*model.RunResult {
	var out []*model.RunResult
	for _, run := range runs {
		if run.Success == ok {
			out = append(out, run)
		}
	}
	return out
}
