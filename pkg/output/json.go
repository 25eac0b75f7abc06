package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/codextrace/codextrace/pkg/model"
)

// JSONFormatter renders reports as indented JSON for machine consumption.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the reduced quiet-mode payload: the session summary plus
// any parse failures. Failures are never summarized away.
type quietReport struct {
	Summary  Summary              `json:"summary"`
	Failures []model.ParseFailure `json:"failures,omitempty"`
}

// Format renders the report as JSON. Quiet mode drops per-run detail but
// keeps the summary and the failed files.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(quietReport{
			Summary:  report.Summary,
			Failures: report.Failures,
		})
	}
	return encoder.Encode(report)
}
