// Package cli provides the command-line interface for codextrace.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codextrace/codextrace/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	configureLogging()

	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// configureLogging sets up the global zerolog logger from the environment.
func configureLogging() {
	level, err := zerolog.ParseLevel(os.Getenv("CODEXTRACE_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("CODEXTRACE_LOG_FORMAT") == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codextrace",
		Short: "Parse codex agent run logs into structured results",
		Long: `codextrace parses the log files written by codex agent runs and
extracts structured data from them:

  - Patches (file diffs applied by the agent)
  - Commands (shell and tool commands executed)
  - Tool usage (named tool invocations, categorized)
  - Generic changes (classified by type)

Logs are discovered by glob pattern (default: codex_run_*.log) and parsed
in lexical path order. A file that cannot be parsed is reported and skipped;
it never aborts the session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewToolsCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
