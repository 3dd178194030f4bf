package fidelius

import (
	"encoding/json"
	"testing"
)

func TestProgramJSONLiftsKnownFields(t *testing.T) {
	wire := `{
		"progname": "2024A000",
		"prog_key": "key123",
		"puid": 42,
		"pi_name": "A. Observer",
		"hours_allocated": 12.5
	}`

	var program Program
	if err := json.Unmarshal([]byte(wire), &program); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if program.Progname != "2024A000" {
		t.Errorf("Expected progname %q, got %q", "2024A000", program.Progname)
	}
	if program.ProgKey != "key123" {
		t.Errorf("Expected prog_key %q, got %q", "key123", program.ProgKey)
	}
	if program.Puid != float64(42) {
		t.Errorf("Expected puid 42, got %v", program.Puid)
	}
	if program.Extra["pi_name"] != "A. Observer" {
		t.Errorf("Expected pi_name to land in Extra, got %v", program.Extra)
	}
	if _, ok := program.Extra["progname"]; ok {
		t.Error("Expected progname to be lifted out of Extra")
	}
}

func TestProgramJSONRoundTripPreservesOpaqueFields(t *testing.T) {
	original := Program{
		Progname: "2024A000",
		ProgKey:  "key123",
		Extra: map[string]any{
			"pi_name":    "A. Observer",
			"progid":     float64(7),
			"start_date": "2024-01-01",
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Program
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Progname != original.Progname || decoded.ProgKey != original.ProgKey {
		t.Errorf("Expected %q/%q, got %q/%q",
			original.Progname, original.ProgKey, decoded.Progname, decoded.ProgKey)
	}
	for key, want := range original.Extra {
		if got := decoded.Extra[key]; got != want {
			t.Errorf("Expected opaque field %s=%v, got %v", key, want, got)
		}
	}
}

func TestProgramMarshalOmitsEmptyPuid(t *testing.T) {
	program := Program{Progname: "P1", ProgKey: "k1"}

	data, err := json.Marshal(program)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := fields["puid"]; ok {
		t.Error("Expected no puid key for a stripped record")
	}
}

func TestProgramFromWire(t *testing.T) {
	program, err := ProgramFromWire(map[string]any{
		"progname": "2024A000",
		"puid":     "abc",
		"pi_name":  "A. Observer",
	})
	if err != nil {
		t.Fatalf("ProgramFromWire failed: %v", err)
	}

	if program.Progname != "2024A000" {
		t.Errorf("Expected progname %q, got %q", "2024A000", program.Progname)
	}
	if program.Puid != "abc" {
		t.Errorf("Expected puid %q, got %v", "abc", program.Puid)
	}
	if program.Extra["pi_name"] != "A. Observer" {
		t.Errorf("Expected pi_name in Extra, got %v", program.Extra)
	}
}

func TestCredentialsProgramNamesSorted(t *testing.T) {
	creds := Credentials{Programs: map[string]Program{
		"Zeta":  {},
		"Alpha": {},
		"Mid":   {},
	}}

	names := creds.ProgramNames()
	expected := []string{"Alpha", "Mid", "Zeta"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("Expected names %v, got %v", expected, names)
		}
	}
}
