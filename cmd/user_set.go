package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var (
	userName      string
	userPassword  string
	userOverwrite bool
)

func init() {
	userSetCmd.Flags().StringVarP(&userName, "name", "n", "", "API account name")
	userSetCmd.Flags().StringVarP(&userPassword, "password", "p", "", "API account password (prompted if omitted)")
	userSetCmd.Flags().BoolVar(&userOverwrite, "overwrite", false, "replace an already registered account")
}

var userSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and store the API account for this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userName == "" {
			fmt.Print("Enter user: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read user: %v", err)
			}
			userName = strings.TrimSpace(line)
		}
		if userPassword == "" {
			fmt.Printf("Enter password for user %s: ", userName)
			secret, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read password: %v", err)
			}
			userPassword = string(secret)
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		spinner, cleanup := startSpinner("Validating account with server...", verbose)
		defer cleanup()

		err = client.AddUserDetails(userName, userPassword, userOverwrite)
		if errors.Is(err, werrors.ErrAlreadySet) {
			spinner.FinalMSG = color.RedString("✗") + " An account is already registered\n" +
				color.CyanString("→") + " Run " + color.YellowString("winterapi user set --overwrite") + " to replace it"
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to store user details: %v", err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Registered account " + color.CyanString(userName)
		return nil
	},
}
