// Package report formats a scored solution as a plain text operations
// report: executive summary, score breakdown, metrics, rack mix and
// threshold-based recommendations.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

// Thresholds for the recommendation tiers.
const (
	scoreExcellent = 80.0
	scoreGood      = 60.0
)

// Generate builds the full text report for a scored solution.
func Generate(sol plan.Solution, layout catalog.Layout) string {
	var b strings.Builder

	section(&b, "DARK STORE RACK PLACEMENT OPTIMIZATION REPORT", 60)
	b.WriteString("\n")

	writeSummary(&b, sol)
	writeBreakdown(&b, sol)
	writeMetrics(&b, sol)
	writeDistribution(&b, sol, layout)
	writeRecommendations(&b, sol)

	b.WriteString("\nGenerated by rackplan\n")
	return b.String()
}

func section(b *strings.Builder, title string, rule int) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", rule) + "\n")
}

func heading(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}

func writeSummary(b *strings.Builder, sol plan.Solution) {
	heading(b, "EXECUTIVE SUMMARY")
	fmt.Fprintf(b, "Overall Optimization Score: %.1f/100\n", sol.Score)
	fmt.Fprintf(b, "Racks Successfully Placed: %d\n", len(sol.Placements))
	fmt.Fprintf(b, "Total Storage Capacity: %s units\n", commaInt(sol.TotalCapacity()))
	fmt.Fprintf(b, "Floor Space Utilization: %.1f%%\n", sol.LayoutEfficiency*100)
	b.WriteString("\n")
}

func writeBreakdown(b *strings.Builder, sol plan.Solution) {
	heading(b, "PERFORMANCE BREAKDOWN")
	fmt.Fprintf(b, "- Layout Efficiency:    %.1f%%\n", sol.LayoutEfficiency*100)
	fmt.Fprintf(b, "- Accessibility Score:  %.1f%%\n", sol.Accessibility*100)
	fmt.Fprintf(b, "- Workflow Efficiency:  %.1f%%\n", sol.Workflow*100)
	b.WriteString("\n")
}

func writeMetrics(b *strings.Builder, sol plan.Solution) {
	m := sol.Metrics
	heading(b, "OPERATIONAL METRICS")
	fmt.Fprintf(b, "- Total Racks: %s\n", commaInt(m.TotalRacks))
	fmt.Fprintf(b, "- Total Capacity: %s\n", commaInt(m.TotalCapacity))
	fmt.Fprintf(b, "- Area Utilization: %.1f%%\n", m.AreaUtilization*100)
	fmt.Fprintf(b, "- Accessibility: %.2f\n", m.Accessibility)
	fmt.Fprintf(b, "- Workflow Regularity: %.2f\n", m.WorkflowRegularity)
	fmt.Fprintf(b, "- Density: %.2f\n", m.Density)
	fmt.Fprintf(b, "- Aisle Efficiency: %.1f%%\n", m.AisleEfficiency*100)
	fmt.Fprintf(b, "- Average Distance To Entrance: %.2fm\n", m.AvgDistanceToEntrance)
	fmt.Fprintf(b, "- Average Distance To Dock: %.2fm\n", m.AvgDistanceToDock)
	b.WriteString("\n")
}

func writeDistribution(b *strings.Builder, sol plan.Solution, layout catalog.Layout) {
	heading(b, "RACK DISTRIBUTION")
	byKind := sol.ByKind()
	for _, k := range catalog.Kinds() {
		placements := byKind[k]
		if len(placements) == 0 {
			continue
		}
		capacity := 0
		distance := 0.0
		for _, p := range placements {
			capacity += p.Rack.Capacity
			distance += geometry.Distance(p.Pos, layout.Entrance)
		}
		fmt.Fprintf(b, "- %s:\n", titleKind(k))
		fmt.Fprintf(b, "  - Count: %d racks\n", len(placements))
		fmt.Fprintf(b, "  - Total Capacity: %s units\n", commaInt(capacity))
		fmt.Fprintf(b, "  - Avg Distance to Entrance: %.1fm\n", distance/float64(len(placements)))
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, sol plan.Solution) {
	heading(b, "RECOMMENDATIONS")
	switch {
	case sol.Score >= scoreExcellent:
		b.WriteString("Excellent optimization achieved!\n")
		b.WriteString("- Layout is highly efficient and well-optimized\n")
		b.WriteString("- Consider this configuration for implementation\n")
	case sol.Score >= scoreGood:
		b.WriteString("Good optimization with room for improvement:\n")
		if sol.LayoutEfficiency < 0.4 {
			b.WriteString("- Consider adding more racks to improve space utilization\n")
		}
		if sol.Accessibility < 0.6 {
			b.WriteString("- Relocate high-turnover racks closer to entrance/loading dock\n")
		}
		if sol.Workflow < 0.6 {
			b.WriteString("- Improve rack arrangement regularity for better workflow\n")
		}
	default:
		b.WriteString("Optimization needs significant improvement:\n")
		b.WriteString("- Review layout constraints and rack requirements\n")
		b.WriteString("- Consider alternative rack configurations\n")
		b.WriteString("- Evaluate if layout dimensions are appropriate\n")
	}
}

// titleKind renders a kind's wire name in title case with spaces,
// e.g. "high_density" becomes "High Density".
func titleKind(k catalog.Kind) string {
	parts := strings.Split(k.String(), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// commaInt formats n with thousands separators.
func commaInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
