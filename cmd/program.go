package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/winter-telescope/winterapi/internal/logging"
)

// ProgramCmd is the top-level program command.
var ProgramCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage observing programs stored on this machine",
	Long: `Provides registration, listing, inspection and removal of observing
programs. A program is validated against the server when added; its record
(PI, allocation, API key) is then stored encrypted locally.

Examples:
  # Register a program (prompts for the key if omitted)
  winterapi program add --name 2024A000

  # List registered programs
  winterapi program list

  # Show a stored program record
  winterapi program show 2024A000`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing program command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	ProgramCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ProgramCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	ProgramCmd.AddCommand(programAddCmd)
	ProgramCmd.AddCommand(programListCmd)
	ProgramCmd.AddCommand(programShowCmd)
	ProgramCmd.AddCommand(programRemoveCmd)
}
