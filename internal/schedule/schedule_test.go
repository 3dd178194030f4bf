package schedule

import (
	"errors"
	"strings"
	"testing"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
	"github.com/winter-telescope/winterapi/internal/fidelius"
	"github.com/winter-telescope/winterapi/internal/models"
)

func testProgram() fidelius.Program {
	return fidelius.Program{Progname: "2024A000", ProgKey: "key-000"}
}

func testToo(filters ...string) models.WinterRaDecToO {
	return models.WinterRaDecToO{
		TooBase: models.TooBase{
			TargetName:     "SN2024abc",
			Filters:        filters,
			TargetPriority: 50,
			TExp:           120,
			NExp:           2,
			NDither:        1,
			StartTimeMJD:   60500,
			EndTimeMJD:     60501,
			MaxAirmass:     2,
		},
		RaDeg:  210.5,
		DecDeg: 54.3,
	}
}

func TestBuildOneRowPerFilter(t *testing.T) {
	toos := []models.ToO{testToo("Y", "J", "Hs")}

	built, err := Build(toos, testProgram())
	if err != nil {
		t.Fatalf("Expected schedule to build, got %v", err)
	}

	if len(built.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(built.Rows))
	}

	wantFilters := []string{"Y", "J", "Hs"}
	for i, row := range built.Rows {
		if row.Filter != wantFilters[i] {
			t.Errorf("Row %d: expected filter %q, got %q", i, wantFilters[i], row.Filter)
		}
		if row.TargetName != "SN2024abc" {
			t.Errorf("Row %d: expected target %q, got %q", i, "SN2024abc", row.TargetName)
		}
		if row.Instrument != models.InstrumentWinter {
			t.Errorf("Row %d: expected instrument %q, got %q", i, models.InstrumentWinter, row.Instrument)
		}
	}
}

func TestBuildCopiesProgramIntoRows(t *testing.T) {
	built, err := Build([]models.ToO{testToo("J")}, testProgram())
	if err != nil {
		t.Fatalf("Expected schedule to build, got %v", err)
	}

	row := built.Rows[0]
	if row.ProgramName != "2024A000" {
		t.Errorf("Expected program name %q, got %q", "2024A000", row.ProgramName)
	}
	if row.ProgramKey != "key-000" {
		t.Errorf("Expected program key %q, got %q", "key-000", row.ProgramKey)
	}
	if row.RaDeg != 210.5 || row.DecDeg != 54.3 {
		t.Errorf("Expected pointing (210.5, 54.3), got (%v, %v)", row.RaDeg, row.DecDeg)
	}
}

func TestBuildPreservesRequestOrder(t *testing.T) {
	first := testToo("Y")
	second := testToo("J", "Hs")
	second.TargetName = "AT2024xyz"

	built, err := Build([]models.ToO{first, second}, testProgram())
	if err != nil {
		t.Fatalf("Expected schedule to build, got %v", err)
	}

	if len(built.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(built.Rows))
	}
	if built.Rows[0].TargetName != "SN2024abc" {
		t.Errorf("Expected first row from first request, got target %q", built.Rows[0].TargetName)
	}
	if built.Rows[1].TargetName != "AT2024xyz" || built.Rows[2].TargetName != "AT2024xyz" {
		t.Errorf("Expected rows 1-2 from second request, got %q and %q",
			built.Rows[1].TargetName, built.Rows[2].TargetName)
	}
}

func TestBuildNamesScheduleUniquely(t *testing.T) {
	toos := []models.ToO{testToo("J")}

	first, err := Build(toos, testProgram())
	if err != nil {
		t.Fatalf("Expected schedule to build, got %v", err)
	}
	second, err := Build(toos, testProgram())
	if err != nil {
		t.Fatalf("Expected schedule to build, got %v", err)
	}

	if !strings.HasPrefix(first.Name, "too_schedule_") {
		t.Errorf("Expected name prefix %q, got %q", "too_schedule_", first.Name)
	}
	if first.Name == second.Name {
		t.Errorf("Expected distinct schedule names, both were %q", first.Name)
	}
}

func TestBuildRejectsEmptyRequestList(t *testing.T) {
	_, err := Build(nil, testProgram())
	if !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for empty request list, got %v", err)
	}
}

func TestBuildRejectsInvalidRequest(t *testing.T) {
	bad := testToo("J")
	bad.TExp = 0

	_, err := Build([]models.ToO{bad}, testProgram())
	if !errors.Is(err, werrors.ErrInvalidToO) {
		t.Fatalf("Expected ErrInvalidToO for zero exposure time, got %v", err)
	}
}

func TestBuildRejectsInvalidProgram(t *testing.T) {
	_, err := Build([]models.ToO{testToo("J")}, fidelius.Program{Progname: "2024A000"})
	if !errors.Is(err, werrors.ErrInvalidProgram) {
		t.Fatalf("Expected ErrInvalidProgram for missing key, got %v", err)
	}
}
