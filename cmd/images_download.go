package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/internal/configs"
	"github.com/winter-telescope/winterapi/internal/models"
	"github.com/winter-telescope/winterapi/internal/ui"
)

var (
	downloadProgram string
	downloadKind    string
	downloadOutput  string
)

func init() {
	imagesDownloadCmd.Flags().StringVar(&downloadProgram, "program", "", "program name the images belong to")
	imagesDownloadCmd.Flags().StringVar(&downloadKind, "kind", string(models.DefaultImageKind), "image kind: raw, stack or diff")
	imagesDownloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "directory to save the archive to")
}

var imagesDownloadCmd = &cobra.Command{
	Use:   "download <path>...",
	Short: "Download images as a zip archive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if downloadProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		if downloadOutput == "" {
			// Fall back to the configured download directory, if any.
			userConfig, err := configs.LoadUserConfig()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load user config: %v", err)
			}
			downloadOutput = userConfig.Defaults.DownloadDir
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		spinner, cleanup := startSpinner("Downloading images...", verbose)
		defer cleanup()

		outputPath, err := client.DownloadImageList(downloadProgram, args, models.ImageKind(downloadKind), downloadOutput)
		if err != nil {
			return Logger.ErrorfAndReturn("download failed: %v", err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Downloaded archive to " + ui.Path.Sprint(outputPath)
		return nil
	},
}
