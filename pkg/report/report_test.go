package report

import (
	"strings"
	"testing"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

func solutionWithScore(t *testing.T, score float64) plan.Solution {
	t.Helper()
	cat := catalog.Default()
	std, err := cat.NewRacks(2, catalog.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	hd, err := cat.NewRacks(1, catalog.KindHighDensity)
	if err != nil {
		t.Fatal(err)
	}
	return plan.Solution{
		Placements: []plan.Placement{
			{Rack: std[0], Pos: geometry.Position{X: 0, Y: 5}},
			{Rack: std[1], Pos: geometry.Position{X: 6, Y: 5}},
			{Rack: hd[0], Pos: geometry.Position{X: 12, Y: 5}},
		},
		Score:            score,
		LayoutEfficiency: 0.45,
		Accessibility:    0.7,
		Workflow:         0.8,
		Metrics: plan.Metrics{
			TotalRacks:            3,
			TotalCapacity:         700,
			AreaUtilization:       0.45,
			AvgDistanceToEntrance: 14.2,
			AvgDistanceToDock:     11.9,
		},
	}
}

func TestGenerateSections(t *testing.T) {
	out := Generate(solutionWithScore(t, 72.0), catalog.SampleLayout())

	for _, want := range []string{
		"DARK STORE RACK PLACEMENT OPTIMIZATION REPORT",
		"EXECUTIVE SUMMARY",
		"Overall Optimization Score: 72.0/100",
		"Racks Successfully Placed: 3",
		"Total Storage Capacity: 700 units",
		"PERFORMANCE BREAKDOWN",
		"- Layout Efficiency:    45.0%",
		"OPERATIONAL METRICS",
		"- Average Distance To Entrance: 14.20m",
		"RACK DISTRIBUTION",
		"- Standard:",
		"- High Density:",
		"  - Count: 2 racks",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateRecommendationTiers(t *testing.T) {
	layout := catalog.SampleLayout()
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"Excellent", 85, "Excellent optimization achieved!"},
		{"ExcellentBoundary", 80, "Excellent optimization achieved!"},
		{"Good", 65, "Good optimization with room for improvement:"},
		{"Poor", 30, "Optimization needs significant improvement:"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Generate(solutionWithScore(t, tc.score), layout)
			if !strings.Contains(out, tc.want) {
				t.Errorf("score %.0f: missing %q", tc.score, tc.want)
			}
		})
	}
}

func TestGenerateGoodTierSuggestions(t *testing.T) {
	sol := solutionWithScore(t, 65)
	sol.Accessibility = 0.5
	out := Generate(sol, catalog.SampleLayout())
	if !strings.Contains(out, "Relocate high-turnover racks") {
		t.Error("low accessibility suggestion missing")
	}
	if strings.Contains(out, "adding more racks") {
		t.Error("efficiency suggestion should not fire at 45% utilization")
	}
}

func TestGenerateEmptySolution(t *testing.T) {
	out := Generate(plan.Empty(), catalog.SampleLayout())
	if !strings.Contains(out, "Racks Successfully Placed: 0") {
		t.Error("empty solution summary wrong")
	}
	if !strings.Contains(out, "Optimization needs significant improvement:") {
		t.Error("zero score should hit the lowest tier")
	}
}

func TestCommaInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range tests {
		if got := commaInt(tc.in); got != tc.want {
			t.Errorf("commaInt(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
