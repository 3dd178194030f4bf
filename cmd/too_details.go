package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var detailsProgram string

func init() {
	tooDetailsCmd.Flags().StringVar(&detailsProgram, "program", "", "program the schedule was submitted under")
}

var tooDetailsCmd = &cobra.Command{
	Use:   "details <schedule-name>",
	Short: "Show the contents of one queued ToO schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if detailsProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		table, err := client.GetTooDetails(detailsProgram, args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("failed to fetch schedule details: %v", err)
		}

		pretty, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format schedule: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
