package placement

import (
	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

// DefaultMinAisleWidth is the reference minimum clearance in meters
// between adjacent racks. It is domain policy, not geometry; override it
// through [WithMinAisleWidth].
const DefaultMinAisleWidth = 1.8

// IsValid reports whether placing rack at pos is legal against the
// layout and the racks already placed. Checks short-circuit in cost
// order: bounds, obstacle overlap, rack overlap, aisle clearance.
func IsValid(rack catalog.Rack, pos geometry.Position, layout catalog.Layout, placed []plan.Placement, minAisle float64) bool {
	if !geometry.InBounds(layout.Floor, pos, rack.Dims) {
		return false
	}
	for _, c := range layout.Constraints {
		if geometry.Overlaps(pos, rack.Dims, c.Pos, c.Dims) {
			return false
		}
	}
	for _, p := range placed {
		if geometry.Overlaps(pos, rack.Dims, p.Pos, p.Rack.Dims) {
			return false
		}
	}
	return hasAdequateAisles(rack, pos, placed, minAisle)
}

// hasAdequateAisles rejects a candidate that sits too close to any placed
// rack. Two racks conflict when their extents line up along one axis
// (origin offset under the larger of the two spans) while their origin
// separation along the other axis is under the sum of both spans plus the
// minimum aisle width. Both orientations are checked independently; the
// comparisons are strict, so a rack exactly at the clearance boundary is
// accepted.
func hasAdequateAisles(rack catalog.Rack, pos geometry.Position, placed []plan.Placement, minAisle float64) bool {
	for _, p := range placed {
		dx := abs(pos.X - p.Pos.X)
		dy := abs(pos.Y - p.Pos.Y)

		// Same row (vertical extents aligned), horizontally too close.
		if dy < max(rack.Dims.Height, p.Rack.Dims.Height) &&
			dx < rack.Dims.Width+p.Rack.Dims.Width+minAisle {
			return false
		}

		// Same column (horizontal extents aligned), vertically too close.
		if dx < max(rack.Dims.Width, p.Rack.Dims.Width) &&
			dy < rack.Dims.Height+p.Rack.Dims.Height+minAisle {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
