package models

import (
	"errors"
	"testing"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

func validBase() TooBase {
	return TooBase{
		TargetName:     "SN2024abc",
		Filters:        []string{"J"},
		TargetPriority: 50,
		TExp:           120,
		NExp:           1,
		NDither:        1,
		StartTimeMJD:   60500,
		EndTimeMJD:     60501,
		MaxAirmass:     2,
	}
}

func TestWinterRaDecToOValid(t *testing.T) {
	too := WinterRaDecToO{TooBase: validBase(), RaDeg: 210.5, DecDeg: 54.3}
	if err := too.Validate(); err != nil {
		t.Fatalf("Expected valid request, got %v", err)
	}
	if too.Instrument() != InstrumentWinter {
		t.Errorf("Expected instrument %q, got %q", InstrumentWinter, too.Instrument())
	}
}

func TestWinterRejectsSummerFilter(t *testing.T) {
	base := validBase()
	base.Filters = []string{"g"}
	too := WinterRaDecToO{TooBase: base, RaDeg: 210.5, DecDeg: 54.3}

	if err := too.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for SUMMER filter on WINTER, got %v", err)
	}
}

func TestSummerRejectsWinterFilter(t *testing.T) {
	base := validBase()
	base.Filters = []string{"J"}
	too := SummerRaDecToO{TooBase: base, RaDeg: 210.5, DecDeg: 54.3}

	if err := too.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for WINTER filter on SUMMER, got %v", err)
	}
}

func TestValidationRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TooBase)
	}{
		{"missing target", func(b *TooBase) { b.TargetName = "" }},
		{"no filters", func(b *TooBase) { b.Filters = nil }},
		{"zero exposure", func(b *TooBase) { b.TExp = 0 }},
		{"zero exposures", func(b *TooBase) { b.NExp = 0 }},
		{"window ends before it starts", func(b *TooBase) { b.EndTimeMJD = b.StartTimeMJD - 1 }},
		{"airmass below 1", func(b *TooBase) { b.MaxAirmass = 0.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := validBase()
			tc.mutate(&base)
			too := WinterRaDecToO{TooBase: base, RaDeg: 210.5, DecDeg: 54.3}
			if err := too.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
				t.Fatalf("Expected ErrInvalidToO, got %v", err)
			}
		})
	}
}

func TestFieldToOValidation(t *testing.T) {
	too := WinterFieldToO{TooBase: validBase(), FieldID: 3944}
	if err := too.Validate(); err != nil {
		t.Fatalf("Expected valid field request, got %v", err)
	}

	too.FieldID = 0
	if err := too.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for missing field ID, got %v", err)
	}
}

func TestPointing(t *testing.T) {
	radec := WinterRaDecToO{TooBase: validBase(), RaDeg: 210.5, DecDeg: 54.3}
	pointing := radec.Pointing()
	if pointing.RaDeg != 210.5 || pointing.DecDeg != 54.3 {
		t.Errorf("Expected ra/dec pointing, got %+v", pointing)
	}

	field := SummerFieldToO{TooBase: validBase(), FieldID: 7, UseFieldGrid: true}
	pointing = field.Pointing()
	if pointing.FieldID != 7 || !pointing.UseFieldGrid {
		t.Errorf("Expected field pointing, got %+v", pointing)
	}
}
