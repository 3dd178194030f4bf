package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/winter-telescope/winterapi/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// UserCmd is the top-level user command.
	UserCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage the API account stored on this machine",
		Long: `Provides registration and inspection of the API user account.

The user and password are validated against the server, then stored
encrypted on this machine. Replacing an existing account requires
--overwrite.

Examples:
  # Register an account (prompts for anything not given)
  winterapi user set --name alice

  # Show the registered account name
  winterapi user show`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing user command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	UserCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	UserCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	UserCmd.AddCommand(userSetCmd)
	UserCmd.AddCommand(userShowCmd)
}
