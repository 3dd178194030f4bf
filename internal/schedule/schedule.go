package schedule

import (
	"fmt"

	"github.com/google/uuid"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
	"github.com/winter-telescope/winterapi/internal/fidelius"
	"github.com/winter-telescope/winterapi/internal/models"
)

// Row is one scheduled observation block: a single filter visit of one
// target under one program.
type Row struct {
	TargetName     string  `json:"target_name"`
	Instrument     string  `json:"instrument"`
	RaDeg          float64 `json:"ra_deg"`
	DecDeg         float64 `json:"dec_deg"`
	FieldID        int     `json:"field_id"`
	UseFieldGrid   bool    `json:"use_field_grid"`
	Filter         string  `json:"filter"`
	ExposureTime   float64 `json:"t_exp"`
	NumExposures   int     `json:"n_exp"`
	NumDithers     int     `json:"n_dither"`
	DitherDistance float64 `json:"dither_distance"`
	Priority       float64 `json:"priority"`
	ProgramName    string  `json:"progname"`
	ProgramKey     string  `json:"prog_key"`
	StartTimeMJD   float64 `json:"start_time_mjd"`
	EndTimeMJD     float64 `json:"end_time_mjd"`
	MaxAirmass     float64 `json:"max_airmass"`
}

// Schedule is a provisional observing schedule, built locally and never
// submitted. It mirrors what the server would derive from the same ToOs.
type Schedule struct {
	Name string `json:"schedule_name"`
	Rows []Row  `json:"rows"`
}

// Build expands a set of ToO requests for one program into schedule rows,
// one row per request filter, in request order.
func Build(toos []models.ToO, program fidelius.Program) (Schedule, error) {
	if err := program.Validate(); err != nil {
		return Schedule{}, err
	}
	if len(toos) == 0 {
		return Schedule{}, fmt.Errorf("no ToO requests to schedule: %w", werrors.ErrInvalidToO)
	}

	schedule := Schedule{
		Name: "too_schedule_" + uuid.NewString(),
	}

	for _, too := range toos {
		if err := too.Validate(); err != nil {
			return Schedule{}, err
		}

		base := too.Base()
		pointing := too.Pointing()

		for _, filter := range base.Filters {
			schedule.Rows = append(schedule.Rows, Row{
				TargetName:     base.TargetName,
				Instrument:     too.Instrument(),
				RaDeg:          pointing.RaDeg,
				DecDeg:         pointing.DecDeg,
				FieldID:        pointing.FieldID,
				UseFieldGrid:   pointing.UseFieldGrid,
				Filter:         filter,
				ExposureTime:   base.TExp,
				NumExposures:   base.NExp,
				NumDithers:     base.NDither,
				DitherDistance: base.DitherDistance,
				Priority:       base.TargetPriority,
				ProgramName:    program.Progname,
				ProgramKey:     program.ProgKey,
				StartTimeMJD:   base.StartTimeMJD,
				EndTimeMJD:     base.EndTimeMJD,
				MaxAirmass:     base.MaxAirmass,
			})
		}
	}

	return schedule, nil
}
