package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codextrace/codextrace/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a codextrace configuration file without parsing any logs.

Checks:
  - YAML syntax
  - Required fields
  - Regex pattern validity
  - Change type names
  - Log directory existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Log dir:           %s\n", cfg.LogDir)
	fmt.Printf("  Log pattern:       %s\n", cfg.LogPattern)
	fmt.Printf("  Custom extractors: %d\n", len(cfg.Extractors))
	fmt.Printf("  Classifier rules:  %d\n", len(cfg.Classify.Rules))

	if len(cfg.Extractors) > 0 {
		fmt.Printf("\nExtractors:\n")
		for i, ec := range cfg.Extractors {
			fmt.Printf("  %d. [%s] %s\n", i+1, ec.ChangeType, ec.Name)
		}
	}

	if _, err := os.Stat(cfg.LogDir); err != nil {
		fmt.Printf("\nWarning: log dir %s does not exist\n", cfg.LogDir)
	}

	return nil
}
