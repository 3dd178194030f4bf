package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var (
	programName      string
	programAPIKey    string
	programOverwrite bool
)

func init() {
	programAddCmd.Flags().StringVarP(&programName, "name", "n", "", "program name")
	programAddCmd.Flags().StringVarP(&programAPIKey, "key", "k", "", "program API key (prompted if omitted)")
	programAddCmd.Flags().BoolVar(&programOverwrite, "overwrite", false, "replace an already registered program")
}

var programAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate and store an observing program",
	RunE: func(cmd *cobra.Command, args []string) error {
		if programName == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --name")
		}
		if programAPIKey == "" {
			fmt.Printf("Enter API key for program %s: ", programName)
			secret, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read API key: %v", err)
			}
			programAPIKey = string(secret)
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		spinner, cleanup := startSpinner("Validating program with server...", verbose)
		defer cleanup()

		err = client.AddProgram(programName, programAPIKey, programOverwrite)
		if errors.Is(err, werrors.ErrAlreadySet) {
			spinner.FinalMSG = color.RedString("✗") + " Program " + color.YellowString(programName) + " is already registered\n" +
				color.CyanString("→") + " Run " + color.YellowString("winterapi program add --overwrite") + " to replace it"
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to store program: %v", err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Registered program " + color.CyanString(programName)
		return nil
	},
}
