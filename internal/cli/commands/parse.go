package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codextrace/codextrace/pkg/config"
	"github.com/codextrace/codextrace/pkg/model"
	"github.com/codextrace/codextrace/pkg/output"
	"github.com/codextrace/codextrace/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Config     string
	Pattern    string
	Output     string
	Extension  string
	ChangeType string
	FailedOnly bool
	Workers    int
	Verbose    bool
	Quiet      bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <log-dir>",
		Short: "Parse codex run logs in a directory",
		Long: `Parse all codex run logs in a directory and report the extracted
patches, commands, tool usage, and changes per run.

Exit codes:
  0 - All runs parsed and successful
  1 - Some runs failed or some files could not be parsed
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Log file glob pattern (default codex_run_*.log)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Extension, "ext", "", "Only report runs touching files with this extension")
	cmd.Flags().StringVar(&opts.ChangeType, "change-type", "", "Only report runs containing this change type")
	cmd.Flags().BoolVar(&opts.FailedOnly, "failed-only", false, "Only report unsuccessful runs")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "Parse files on N workers (output order is unchanged)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-run commands, tools, and diffs")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	logDir := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := buildParser(ctx, logDir, opts)
	if err != nil {
		return err
	}

	session, err := p.ParseSession(ctx)
	if err != nil {
		return fmt.Errorf("parsing session: %w", err)
	}

	session.Runs = applyFilters(session.Runs, opts)

	report := output.BuildReport(session)
	formatter, err := newFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if report.HasFailures() || report.Summary.SuccessfulRuns < report.Summary.TotalRuns {
		ExitCode = 1
	}
	return nil
}

func buildParser(ctx context.Context, logDir string, opts *ParseOptions) (*parser.Parser, error) {
	var parserOpts []parser.Option
	if opts.Pattern != "" {
		parserOpts = append(parserOpts, parser.WithPattern(opts.Pattern))
	}
	if opts.Workers > 1 {
		parserOpts = append(parserOpts, parser.WithWorkers(opts.Workers))
	}

	if opts.Config == "" {
		return parser.New(logDir, parserOpts...)
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.LogDir = logDir
	return cfg.Parser(parserOpts...)
}

func applyFilters(runs []*model.RunResult, opts *ParseOptions) []*model.RunResult {
	if opts.Extension != "" {
		runs = parser.FilterByExtension(runs, opts.Extension)
	}
	if opts.ChangeType != "" {
		runs = parser.FilterByChangeType(runs, model.ChangeType(opts.ChangeType))
	}
	if opts.FailedOnly {
		runs = parser.FilterBySuccess(runs, false)
	}
	return runs
}

func newFormatter(name string, opts output.FormatOptions) (output.Formatter, error) {
	switch name {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", name)
	}
}
