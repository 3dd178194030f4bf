package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var validate = validator.New()

// Instruments a ToO can target. WINTER and SUMMER share the mount but not
// the filter wheel, so requests are typed per instrument.
const (
	InstrumentWinter = "winter"
	InstrumentSummer = "summer"
)

// ToO is one Target-of-Opportunity observation request.
type ToO interface {
	Instrument() string
	Validate() error
	Base() TooBase
	Pointing() Pointing
}

// Pointing is where a ToO looks: either a survey field or raw coordinates.
type Pointing struct {
	RaDeg        float64
	DecDeg       float64
	FieldID      int
	UseFieldGrid bool
}

// TooBase carries the fields common to every ToO request.
type TooBase struct {
	TargetName     string   `json:"target_name" validate:"required"`
	Filters        []string `json:"filters" validate:"min=1"`
	TargetPriority float64  `json:"target_priority" validate:"gte=0"`
	TExp           float64  `json:"t_exp" validate:"gt=0"`
	NExp           int      `json:"n_exp" validate:"min=1"`
	NDither        int      `json:"n_dither" validate:"min=1"`
	DitherDistance float64  `json:"dither_distance" validate:"gte=0"`
	StartTimeMJD   float64  `json:"start_time_mjd" validate:"gte=0"`
	EndTimeMJD     float64  `json:"end_time_mjd" validate:"gtefield=StartTimeMJD"`
	MaxAirmass     float64  `json:"max_airmass" validate:"gte=1"`
}

// Base returns the common fields; promoted onto every concrete ToO type.
func (t TooBase) Base() TooBase { return t }

// WinterFieldToO requests observations of a WINTER survey field.
type WinterFieldToO struct {
	TooBase
	FieldID      int  `json:"field_id" validate:"min=1"`
	UseFieldGrid bool `json:"use_field_grid"`
}

func (t WinterFieldToO) Instrument() string { return InstrumentWinter }

func (t WinterFieldToO) Pointing() Pointing {
	return Pointing{FieldID: t.FieldID, UseFieldGrid: t.UseFieldGrid}
}

func (t WinterFieldToO) Validate() error {
	return check(t, t.Filters, winterFilters)
}

// WinterRaDecToO requests WINTER observations of an arbitrary sky position.
type WinterRaDecToO struct {
	TooBase
	RaDeg  float64 `json:"ra_deg" validate:"gte=0,lt=360"`
	DecDeg float64 `json:"dec_deg" validate:"gte=-90,lte=90"`
}

func (t WinterRaDecToO) Instrument() string { return InstrumentWinter }

func (t WinterRaDecToO) Pointing() Pointing {
	return Pointing{RaDeg: t.RaDeg, DecDeg: t.DecDeg}
}

func (t WinterRaDecToO) Validate() error {
	return check(t, t.Filters, winterFilters)
}

// SummerFieldToO requests observations of a SUMMER survey field.
type SummerFieldToO struct {
	TooBase
	FieldID      int  `json:"field_id" validate:"min=1"`
	UseFieldGrid bool `json:"use_field_grid"`
}

func (t SummerFieldToO) Instrument() string { return InstrumentSummer }

func (t SummerFieldToO) Pointing() Pointing {
	return Pointing{FieldID: t.FieldID, UseFieldGrid: t.UseFieldGrid}
}

func (t SummerFieldToO) Validate() error {
	return check(t, t.Filters, summerFilters)
}

// SummerRaDecToO requests SUMMER observations of an arbitrary sky position.
type SummerRaDecToO struct {
	TooBase
	RaDeg  float64 `json:"ra_deg" validate:"gte=0,lt=360"`
	DecDeg float64 `json:"dec_deg" validate:"gte=-90,lte=90"`
}

func (t SummerRaDecToO) Instrument() string { return InstrumentSummer }

func (t SummerRaDecToO) Pointing() Pointing {
	return Pointing{RaDeg: t.RaDeg, DecDeg: t.DecDeg}
}

func (t SummerRaDecToO) Validate() error {
	return check(t, t.Filters, summerFilters)
}

var (
	winterFilters = map[string]bool{"Y": true, "J": true, "Hs": true, "dark": true}
	summerFilters = map[string]bool{"u": true, "g": true, "r": true, "i": true}
)

func check(too any, filters []string, allowed map[string]bool) error {
	if err := validate.Struct(too); err != nil {
		return fmt.Errorf("%v: %w", err, werrors.ErrInvalidToO)
	}
	for _, filter := range filters {
		if !allowed[filter] {
			return fmt.Errorf("filter %q not available on this instrument: %w",
				filter, werrors.ErrInvalidToO)
		}
	}
	return nil
}
