package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var queueProgram string

func init() {
	tooQueueCmd.Flags().StringVar(&queueProgram, "program", "", "program name to list the queue for")
}

var tooQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the observatory queue for a program",
	RunE: func(cmd *cobra.Command, args []string) error {
		if queueProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		table, err := client.GetObservatoryQueue(queueProgram)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to fetch observatory queue: %v", err)
		}

		if len(table) == 0 {
			fmt.Println(color.YellowString("No queued ToO schedules for ") + color.CyanString(queueProgram))
			return nil
		}

		pretty, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format queue: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
