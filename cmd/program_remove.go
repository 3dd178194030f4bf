package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var programRemoveCmd = &cobra.Command{
	Use:   "remove <program>",
	Short: "Remove a stored program record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		err = client.DeleteProgram(args[0])
		if errors.Is(err, werrors.ErrNotFound) {
			fmt.Println(color.RedString("✗") + " " + err.Error())
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to remove program: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Removed program " + color.CyanString(args[0]))
		return nil
	},
}
