package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/darkstore/rackplan/pkg/errors"
)

func mustMarshal(t *testing.T, s Scenario) []byte {
	t.Helper()
	data, err := toml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal scenario: %v", err)
	}
	return data
}

const scenarioTOML = `
name = "test-store"

[floor]
width = 20.0
height = 30.0

[entrance]
x = 19.0
y = 1.0

[dock]
x = 1.0
y = 29.0

[[constraint]]
name = "office"
kind = "office"
x = 0.0
y = 0.0
width = 4.0
height = 4.0

[[racks]]
kind = "standard"
count = 5

[[racks]]
kind = "freezer"
count = 2

[optimizer]
min_aisle_width = 2.0
max_iterations = 50
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioTOML))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if s.Name != "test-store" {
		t.Errorf("name = %q, want test-store", s.Name)
	}
	if s.Floor.Width != 20 || s.Floor.Height != 30 {
		t.Errorf("floor = %+v, want 20x30", s.Floor)
	}
	if len(s.Constraints) != 1 || s.Constraints[0].Kind != "office" {
		t.Errorf("constraints = %+v", s.Constraints)
	}
	if s.Optimizer.MinAisleWidth != 2.0 || s.Optimizer.MaxIterations != 50 {
		t.Errorf("optimizer = %+v", s.Optimizer)
	}

	layout := s.Layout()
	if err := layout.Validate(); err != nil {
		t.Fatalf("layout invalid: %v", err)
	}
	if layout.Entrance.X != 19 || layout.Dock.Y != 29 {
		t.Errorf("anchors = entrance %+v dock %+v", layout.Entrance, layout.Dock)
	}

	racks, err := s.BuildRacks(Default())
	if err != nil {
		t.Fatalf("BuildRacks: %v", err)
	}
	if len(racks) != 7 {
		t.Fatalf("got %d racks, want 7", len(racks))
	}
	if racks[0].ID != "standard_1" || racks[5].ID != "freezer_1" {
		t.Errorf("rack ids = %q, %q", racks[0].ID, racks[5].ID)
	}
}

func TestParseScenarioRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{
			name: "NotTOML",
			toml: "{not valid",
			code: errors.ErrCodeInvalidScenario,
		},
		{
			name: "ZeroFloor",
			toml: "[floor]\nwidth = 0.0\nheight = 30.0\n",
			code: errors.ErrCodeInvalidScenario,
		},
		{
			name: "UnknownRackKind",
			toml: "[floor]\nwidth = 20.0\nheight = 30.0\n[[racks]]\nkind = \"cryogenic\"\ncount = 1\n",
			code: errors.ErrCodeInvalidKind,
		},
		{
			name: "NegativeCount",
			toml: "[floor]\nwidth = 20.0\nheight = 30.0\n[[racks]]\nkind = \"standard\"\ncount = -1\n",
			code: errors.ErrCodeInvalidScenario,
		},
		{
			name: "UnknownConstraintKind",
			toml: "[floor]\nwidth = 20.0\nheight = 30.0\n[[constraint]]\nname = \"x\"\nkind = \"moat\"\n",
			code: errors.ErrCodeInvalidKind,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.toml))
			if !errors.Is(err, tc.code) {
				t.Errorf("error = %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.toml")
	if err := os.WriteFile(path, []byte(scenarioTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Name != "test-store" {
		t.Errorf("name = %q", s.Name)
	}

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSampleScenario(t *testing.T) {
	s := SampleScenario()
	if _, err := ParseScenario(mustMarshal(t, s)); err != nil {
		t.Fatalf("sample scenario does not round-trip: %v", err)
	}
	racks, err := s.BuildRacks(Default())
	if err != nil {
		t.Fatalf("BuildRacks: %v", err)
	}
	if len(racks) != 30 {
		t.Errorf("got %d racks, want 30", len(racks))
	}
	if s.Layout().Floor != SampleLayout().Floor {
		t.Error("sample scenario floor differs from sample layout")
	}
}
