package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/internal/models"
)

func init() {
	addTooRequestFlags(tooPlanCmd)
}

var tooPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the provisional schedule for a request locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tooProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		plan, err := client.BuildScheduleLocally(tooProgram, []models.ToO{buildTooRequest()})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to build schedule: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Built schedule " + color.CyanString(plan.Name) +
			fmt.Sprintf(" with %d rows", len(plan.Rows)))

		pretty, err := json.MarshalIndent(plan.Rows, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format schedule: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
