// codextrace - Codex Run Log Parser
//
// codextrace parses the log files written by codex agent runs and extracts
// structured data: patches, commands, tool usage, and classified changes.
package main

import (
	"os"

	"github.com/codextrace/codextrace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
