package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the programs registered on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		programs := client.GetPrograms()
		if len(programs) == 0 {
			fmt.Println(color.YellowString("No programs registered") + "\n" +
				color.CyanString("→") + " Run " + color.YellowString("winterapi program add") + " first")
			return nil
		}

		for _, name := range programs {
			fmt.Println(color.CyanString(name))
		}
		return nil
	},
}
