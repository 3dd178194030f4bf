package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	logger "github.com/winter-telescope/winterapi/internal/logging"
)

// PingCmd checks the server is reachable and the client version is current.
var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the ToO server is reachable",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		if client.Ping() {
			fmt.Println(color.GreenString("✓") + " Server is reachable")
		} else {
			fmt.Println(color.RedString("✗") + " Server not reached")
		}
		return nil
	},
}

func init() {
	PingCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	PingCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}
