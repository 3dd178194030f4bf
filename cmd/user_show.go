package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the registered API account name",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		user, err := client.GetUser()
		if errors.Is(err, werrors.ErrNotSet) {
			fmt.Println(color.RedString("✗") + " No account registered\n" +
				color.CyanString("→") + " Run " + color.YellowString("winterapi user set") + " first")
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read user: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Registered account: " + color.CyanString(user))
		return nil
	},
}
