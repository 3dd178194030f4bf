package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteProgram string

func init() {
	tooDeleteCmd.Flags().StringVar(&deleteProgram, "program", "", "program the schedule was submitted under")
}

var tooDeleteCmd = &cobra.Command{
	Use:   "delete <schedule-name>",
	Short: "Delete one queued ToO schedule from the observatory queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		if err := client.DeleteTooRequest(deleteProgram, args[0]); err != nil {
			return Logger.ErrorfAndReturn("failed to delete schedule: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Deleted schedule " + color.CyanString(args[0]))
		return nil
	},
}
