package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winter-telescope/winterapi/internal/models"
	"github.com/winter-telescope/winterapi/internal/winter"
)

var (
	imagesProgram string
	imagesTarget  string
	imagesCone    string
	imagesRect    string
	imagesStart   string
	imagesEnd     string
	imagesKind    string
)

func init() {
	imagesQueryCmd.Flags().StringVar(&imagesProgram, "program", "", "program name to query images for")
	imagesQueryCmd.Flags().StringVar(&imagesTarget, "target", "", "filter by target name")
	imagesQueryCmd.Flags().StringVar(&imagesCone, "cone", "", "cone search as ra,dec,radius in degrees")
	imagesQueryCmd.Flags().StringVar(&imagesRect, "rect", "", "box search as ra_min,ra_max,dec_min,dec_max in degrees")
	imagesQueryCmd.Flags().StringVar(&imagesStart, "start", "", "start date (YYYY-MM-DD, default 30 days ago)")
	imagesQueryCmd.Flags().StringVar(&imagesEnd, "end", "", "end date (YYYY-MM-DD, default today)")
	imagesQueryCmd.Flags().StringVar(&imagesKind, "kind", string(models.DefaultImageKind), "image kind: raw, stack or diff")
}

func parseFloats(value string, n int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	floats := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", part, err)
		}
		floats[i] = f
	}
	return floats, nil
}

var imagesQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query images by program, target, cone or rectangle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if imagesProgram == "" {
			return Logger.ErrorfAndReturn("a program name is required, pass --program")
		}

		client, err := newClient()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize client: %v", err)
		}

		kind := models.ImageKind(imagesKind)

		var table winter.Table
		switch {
		case imagesCone != "":
			cone, err := parseFloats(imagesCone, 3)
			if err != nil {
				return Logger.ErrorfAndReturn("bad --cone value: %v", err)
			}
			table, err = client.QueryImagesByCone(imagesProgram, cone[0], cone[1], cone[2], imagesStart, imagesEnd, kind)
			if err != nil {
				return Logger.ErrorfAndReturn("image query failed: %v", err)
			}
		case imagesRect != "":
			rect, err := parseFloats(imagesRect, 4)
			if err != nil {
				return Logger.ErrorfAndReturn("bad --rect value: %v", err)
			}
			table, err = client.QueryImagesByRectangle(imagesProgram, rect[0], rect[1], rect[2], rect[3], imagesStart, imagesEnd, kind)
			if err != nil {
				return Logger.ErrorfAndReturn("image query failed: %v", err)
			}
		case imagesTarget != "":
			table, err = client.QueryImagesByTarget(imagesProgram, imagesTarget, imagesStart, imagesEnd, kind)
			if err != nil {
				return Logger.ErrorfAndReturn("image query failed: %v", err)
			}
		default:
			table, err = client.QueryImagesByProgram(imagesProgram, imagesStart, imagesEnd, kind)
			if err != nil {
				return Logger.ErrorfAndReturn("image query failed: %v", err)
			}
		}

		if len(table) == 0 {
			fmt.Println(color.YellowString("No images matched"))
			return nil
		}

		pretty, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to format results: %v", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}
