package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/internal/models"
)

var tooTrigger bool

func init() {
	addTooRequestFlags(tooSubmitCmd)
	tooSubmitCmd.Flags().BoolVar(&tooTrigger, "trigger", false, "really queue the request (otherwise a server-side dry run)")
}

var tooSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a ToO request to the observatory",
	Long: `Submits a ToO request under a program. Without --trigger the server
validates the request and returns the schedule it would queue, but queues
nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tooProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		too := buildTooRequest()

		spinner, cleanup := startSpinner("Submitting ToO request...", verbose)
		defer cleanup()

		submit := client.SubmitTooWinter
		if tooSummer {
			submit = client.SubmitTooSummer
		}

		table, err := submit(tooProgram, []models.ToO{too}, tooTrigger)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to submit ToO: %v", err)
		}

		if tooTrigger {
			spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Queued %d schedule rows", len(table))
		} else {
			spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Validated, %d rows would be queued\n", len(table)) +
				color.CyanString("→") + " Re-run with " + color.YellowString("--trigger") + " to queue for real"
		}
		cleanup()

		pretty, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format schedule: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
