package models

import (
	"errors"
	"testing"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

func queryBase() ImageQueryBase {
	return ImageQueryBase{
		ProgramName: "2024A000",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		Kind:        DefaultImageKind,
	}
}

func TestProgramImageQueryValid(t *testing.T) {
	query := ProgramImageQuery{ImageQueryBase: queryBase()}
	if err := query.Validate(); err != nil {
		t.Fatalf("Expected valid query, got %v", err)
	}
	if query.Program() != "2024A000" {
		t.Errorf("Expected program %q, got %q", "2024A000", query.Program())
	}
}

func TestImageQueryRejectsMissingProgram(t *testing.T) {
	base := queryBase()
	base.ProgramName = ""
	query := ProgramImageQuery{ImageQueryBase: base}

	if err := query.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO, got %v", err)
	}
}

func TestImageQueryRejectsUnknownKind(t *testing.T) {
	base := queryBase()
	base.Kind = "thumbnail"
	query := ProgramImageQuery{ImageQueryBase: base}

	if err := query.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for unknown kind, got %v", err)
	}
}

func TestConeQueryValidation(t *testing.T) {
	query := ConeImageQuery{ImageQueryBase: queryBase(), Ra: 210.5, Dec: 54.3, RadiusDeg: 0.5}
	if err := query.Validate(); err != nil {
		t.Fatalf("Expected valid cone query, got %v", err)
	}

	query.RadiusDeg = 0
	if err := query.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for zero radius, got %v", err)
	}
}

func TestRectangleQueryValidation(t *testing.T) {
	query := RectangleImageQuery{
		ImageQueryBase: queryBase(),
		RaMin:          210, RaMax: 211,
		DecMin: 54, DecMax: 55,
	}
	if err := query.Validate(); err != nil {
		t.Fatalf("Expected valid rectangle query, got %v", err)
	}

	query.RaMax = 209
	if err := query.Validate(); !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for inverted RA range, got %v", err)
	}
}
