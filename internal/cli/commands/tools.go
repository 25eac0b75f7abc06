package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codextrace/codextrace/pkg/parser"
)

// ToolsOptions holds command-line options for the tools command.
type ToolsOptions struct {
	Pattern string
	Verbose bool
}

// NewToolsCommand creates the tools command.
func NewToolsCommand() *cobra.Command {
	opts := &ToolsOptions{}

	cmd := &cobra.Command{
		Use:   "tools <log-dir>",
		Short: "Discover the tools used across all runs",
		Long: `Scan all codex run logs in a directory and list every tool the agent
invoked, with invocation counts and example arguments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Log file glob pattern (default codex_run_*.log)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show example invocations")

	return cmd
}

func runTools(cmd *cobra.Command, args []string, opts *ToolsOptions) error {
	logDir := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var parserOpts []parser.Option
	if opts.Pattern != "" {
		parserOpts = append(parserOpts, parser.WithPattern(opts.Pattern))
	}

	p, err := parser.New(logDir, parserOpts...)
	if err != nil {
		return err
	}

	tools, err := p.DiscoverTools(ctx)
	if err != nil {
		return fmt.Errorf("discovering tools: %w", err)
	}

	if len(tools) == 0 {
		fmt.Println("No tool invocations found")
		return nil
	}

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		summary := tools[name]
		fmt.Printf("%-20s %4d invocation(s)  [%s]\n", name, summary.Count, strings.Join(summary.Kinds, ", "))
		if opts.Verbose {
			for _, example := range summary.Examples {
				fmt.Printf("    %s\n", example)
			}
		}
	}

	return nil
}
