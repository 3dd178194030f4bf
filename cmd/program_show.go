package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var programShowCmd = &cobra.Command{
	Use:   "show <program>",
	Short: "Show a stored program record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		program, err := client.GetProgramDetails(args[0])
		if errors.Is(err, werrors.ErrNotFound) {
			fmt.Println(color.RedString("✗") + " " + err.Error())
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read program: %v", err)
		}

		pretty, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format program: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
