package cmd

import (
	"time"

	"github.com/spf13/cobra"

	logger "github.com/winter-telescope/winterapi/internal/logging"
	"github.com/winter-telescope/winterapi/internal/models"
)

// nowMJD returns the current time as a Modified Julian Date.
func nowMJD() float64 {
	return float64(time.Now().Unix())/86400.0 + 40587.0
}

// Flags shared by the plan and submit subcommands, which both build one ToO
// request from the command line.
var (
	tooProgram      string
	tooTarget       string
	tooRa           float64
	tooDec          float64
	tooField        int
	tooUseFieldGrid bool
	tooFilters      []string
	tooPriority     float64
	tooTExp         float64
	tooNExp         int
	tooNDither      int
	tooDitherDist   float64
	tooStartMJD     float64
	tooEndMJD       float64
	tooMaxAirmass   float64
	tooSummer       bool
)

// TooCmd is the top-level too command.
var TooCmd = &cobra.Command{
	Use:   "too",
	Short: "Plan, submit and manage Target-of-Opportunity requests",
	Long: `Provides planning, submission and queue management for ToO requests.

Examples:
  # Preview the schedule a request would produce, without contacting the server
  winterapi too plan --program 2024A000 --target SN2024abc --ra 210.5 --dec 54.3 \
      --filters Y,J --texp 120 --nexp 2

  # Submit for real
  winterapi too submit --program 2024A000 --target SN2024abc --ra 210.5 --dec 54.3 \
      --filters Y,J --texp 120 --nexp 2 --trigger

  # Inspect and prune the observatory queue
  winterapi too queue --program 2024A000
  winterapi too delete --program 2024A000 timed_requests_1234`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing too command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	TooCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	TooCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	TooCmd.AddCommand(tooPlanCmd)
	TooCmd.AddCommand(tooSubmitCmd)
	TooCmd.AddCommand(tooQueueCmd)
	TooCmd.AddCommand(tooDetailsCmd)
	TooCmd.AddCommand(tooDeleteCmd)
}

func addTooRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&tooProgram, "program", "", "program name the request is submitted under")
	cmd.Flags().StringVar(&tooTarget, "target", "", "target name")
	cmd.Flags().Float64Var(&tooRa, "ra", 0, "right ascension in degrees")
	cmd.Flags().Float64Var(&tooDec, "dec", 0, "declination in degrees")
	cmd.Flags().IntVar(&tooField, "field", 0, "survey field ID (alternative to --ra/--dec)")
	cmd.Flags().BoolVar(&tooUseFieldGrid, "grid", false, "use the field dither grid")
	cmd.Flags().StringSliceVar(&tooFilters, "filters", []string{"J"}, "filters to observe in")
	cmd.Flags().Float64Var(&tooPriority, "priority", 50, "target priority")
	cmd.Flags().Float64Var(&tooTExp, "texp", 120, "exposure time in seconds")
	cmd.Flags().IntVar(&tooNExp, "nexp", 1, "exposures per visit")
	cmd.Flags().IntVar(&tooNDither, "ndither", 1, "dither positions")
	cmd.Flags().Float64Var(&tooDitherDist, "dither-dist", 0, "dither distance in arcsec")
	cmd.Flags().Float64Var(&tooStartMJD, "start-mjd", 0, "earliest observation time (MJD, 0 = now)")
	cmd.Flags().Float64Var(&tooEndMJD, "end-mjd", 0, "latest observation time (MJD, 0 = start + 1 day)")
	cmd.Flags().Float64Var(&tooMaxAirmass, "max-airmass", 2, "maximum airmass")
	cmd.Flags().BoolVar(&tooSummer, "summer", false, "target the SUMMER instrument instead of WINTER")
}

// buildTooRequest assembles one ToO request from the shared flags.
func buildTooRequest() models.ToO {
	start, end := tooStartMJD, tooEndMJD
	if start == 0 {
		start = nowMJD()
	}
	if end == 0 {
		end = start + 1
	}

	base := models.TooBase{
		TargetName:     tooTarget,
		Filters:        tooFilters,
		TargetPriority: tooPriority,
		TExp:           tooTExp,
		NExp:           tooNExp,
		NDither:        tooNDither,
		DitherDistance: tooDitherDist,
		StartTimeMJD:   start,
		EndTimeMJD:     end,
		MaxAirmass:     tooMaxAirmass,
	}

	switch {
	case tooSummer && tooField > 0:
		return models.SummerFieldToO{TooBase: base, FieldID: tooField, UseFieldGrid: tooUseFieldGrid}
	case tooSummer:
		return models.SummerRaDecToO{TooBase: base, RaDeg: tooRa, DecDeg: tooDec}
	case tooField > 0:
		return models.WinterFieldToO{TooBase: base, FieldID: tooField, UseFieldGrid: tooUseFieldGrid}
	default:
		return models.WinterRaDecToO{TooBase: base, RaDeg: tooRa, DecDeg: tooDec}
	}
}
