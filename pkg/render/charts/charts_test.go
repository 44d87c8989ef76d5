package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

func TestWriteDashboard(t *testing.T) {
	racks, err := catalog.Default().NewRacks(3, catalog.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	sol := plan.Solution{
		Placements: []plan.Placement{
			{Rack: racks[0], Pos: geometry.Position{X: 0, Y: 0}},
			{Rack: racks[1], Pos: geometry.Position{X: 5, Y: 0}},
			{Rack: racks[2], Pos: geometry.Position{X: 10, Y: 0}},
		},
		Score:            64.2,
		LayoutEfficiency: 0.41,
		Accessibility:    0.62,
		Workflow:         0.88,
	}

	var buf bytes.Buffer
	if err := WriteDashboard(&buf, sol, "Dark Store A"); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Dark Store A", "accessibility", "Rack mix", "standard"} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestWriteDashboardEmptySolution(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDashboard(&buf, plan.Empty(), "empty"); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected HTML output for empty solution")
	}
}
