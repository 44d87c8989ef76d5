// Package plan defines the placement solution artifact shared by the
// search engine, the scoring engine, and every downstream consumer
// (renderers, exporters, the report generator, and the HTTP server).
//
// A [Placement] pairs an immutable rack descriptor with the position the
// search committed for it. Racks the search could not fit simply have no
// Placement; "unplaced" is an absence, not a nil field.
//
// [Solution] is produced once per search or scoring invocation and never
// mutated afterward.
package plan

import (
	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
)

// Placement is a rack committed to a position on the floor. Only the
// search engine (or an external editor being re-scored) produces these.
type Placement struct {
	Rack catalog.Rack
	Pos  geometry.Position
}

// FootprintArea returns the floor area occupied by the placed rack.
func (p Placement) FootprintArea() float64 { return p.Rack.Dims.Area() }

// Metrics carries every reported figure for a solution. Integer counts
// stay integers and distances stay meters; downstream formatting
// (percent vs meters vs raw count) depends on the field types.
type Metrics struct {
	TotalRacks            int     `json:"total_racks" bson:"total_racks"`
	TotalCapacity         int     `json:"total_capacity" bson:"total_capacity"`
	AreaUtilization       float64 `json:"area_utilization" bson:"area_utilization"`
	Accessibility         float64 `json:"accessibility" bson:"accessibility"`
	WorkflowRegularity    float64 `json:"workflow_regularity" bson:"workflow_regularity"`
	Density               float64 `json:"density" bson:"density"`
	AisleEfficiency       float64 `json:"aisle_efficiency" bson:"aisle_efficiency"`
	AvgDistanceToEntrance float64 `json:"average_distance_to_entrance" bson:"average_distance_to_entrance"`
	AvgDistanceToDock     float64 `json:"average_distance_to_dock" bson:"average_distance_to_dock"`
}

// Solution is the sole artifact the core hands to collaborators: the
// racks that ended up placed, the composite score in [0,100], the three
// weighted sub-scores, and the full metrics block.
type Solution struct {
	Placements       []Placement
	Score            float64
	LayoutEfficiency float64
	Accessibility    float64
	Workflow         float64
	Metrics          Metrics
}

// Empty returns the defined zero solution: no racks, zero score. It is
// what a search returns when no attempt placed anything at all.
func Empty() Solution {
	return Solution{}
}

// TotalCapacity sums the capacity of the placed racks.
func (s Solution) TotalCapacity() int {
	total := 0
	for _, p := range s.Placements {
		total += p.Rack.Capacity
	}
	return total
}

// ByKind groups the placed racks by archetype, preserving placement order
// within each kind.
func (s Solution) ByKind() map[catalog.Kind][]Placement {
	m := make(map[catalog.Kind][]Placement)
	for _, p := range s.Placements {
		m[p.Rack.Kind] = append(m[p.Rack.Kind], p)
	}
	return m
}
