package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "winterapi",
	Short: "winterapi - A client for the WINTER/SUMMER Target-of-Opportunity API.",
	Long: `winterapi talks to the WINTER observatory's ToO service: register your
account and observing programs, submit Target-of-Opportunity requests,
inspect the observatory queue, and download resulting images.

Credentials are stored encrypted on this machine, with the encryption key
held by your operating system's keyring.

Usage:
  winterapi <command> [flags]

Available Commands:
  user       Manage the API account
  program    Manage observing programs
  too        Plan, submit and manage ToO requests
  images     Query and download images
  cache      Manage the local credential cache
  ping       Check the server is reachable

Run 'winterapi help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to winterapi! Run 'winterapi --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.UserCmd)
	rootCmd.AddCommand(cmd.ProgramCmd)
	rootCmd.AddCommand(cmd.TooCmd)
	rootCmd.AddCommand(cmd.ImagesCmd)
	rootCmd.AddCommand(cmd.CacheCmd)
	rootCmd.AddCommand(cmd.PingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
