package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/internal/configs"
	"github.com/winter-telescope/winterapi/internal/fidelius"
	logger "github.com/winter-telescope/winterapi/internal/logging"
)

// CacheCmd is the top-level cache command.
var CacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local credential cache",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing cache command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	CacheCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	CacheCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	CacheCmd.AddCommand(cacheClearCmd)
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the stored credentials and encryption key",
	Long: `Removes the encrypted secrets file and deletes the encryption key
from the platform keyring. User, password and all program records are lost.
Safe to run twice; clearing an already empty cache does nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Clearing works directly on the store; no need to ping the server,
		// and a store that fails to decrypt must still be clearable.
		store := fidelius.NewStore(configs.WinterSettings, fidelius.SystemKeyring{})
		if err := store.Clear(); err != nil {
			return Logger.ErrorfAndReturn("failed to clear cache: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Cleared stored credentials")
		return nil
	},
}
