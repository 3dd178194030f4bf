package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/winter-telescope/winterapi/internal/logging"
)

// ImagesCmd is the top-level images command.
var ImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Query and download images taken for a program",
	Long: `Provides image queries (by program, target, cone or rectangle) and
bulk download of the results as a zip archive.

Examples:
  # Everything the program took in the last 30 days
  winterapi images query --program 2024A000

  # A cone search around a position
  winterapi images query --program 2024A000 --cone 210.5,54.3,0.5

  # Download specific images
  winterapi images download --program 2024A000 path/to/image1.fits path/to/image2.fits`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing images command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	ImagesCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ImagesCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	ImagesCmd.AddCommand(imagesQueryCmd)
	ImagesCmd.AddCommand(imagesDownloadCmd)
}
