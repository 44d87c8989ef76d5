// Package geometry provides the primitive value types and axis-aligned
// rectangle tests used by the placement engine.
//
// All coordinates are in meters with the origin at the south-west corner
// of the floor. A rectangle is described by its origin [Position] (lower
// left corner) plus its [Dimensions]; rectangles are never rotated by any
// geometric test, though Position carries a rotation field for callers
// that annotate orientation.
//
// Everything in this package is a pure function on value types. Nothing
// here knows about racks, obstacles, or floors - those live in
// [github.com/darkstore/rackplan/pkg/catalog].
package geometry

import "math"

// Dimensions is a width/height pair in meters. Both values are expected
// to be positive; constructors in the catalog package enforce this.
type Dimensions struct {
	Width  float64
	Height float64
}

// Area returns width multiplied by height.
func (d Dimensions) Area() float64 { return d.Width * d.Height }

// Position is a point on the floor in meters. Rotation is carried for
// serialization round-trips but is not consulted by any geometric test.
type Position struct {
	X        float64
	Y        float64
	Rotation float64
}

// Overlaps reports whether two axis-aligned rectangles intersect with
// positive area. Rectangles that merely share an edge do not overlap.
// The test is symmetric in its arguments.
func Overlaps(posA Position, dimA Dimensions, posB Position, dimB Dimensions) bool {
	return !(posA.X+dimA.Width <= posB.X ||
		posB.X+dimB.Width <= posA.X ||
		posA.Y+dimA.Height <= posB.Y ||
		posB.Y+dimB.Height <= posA.Y)
}

// InBounds reports whether the rectangle at pos with size dim lies fully
// inside the floor rectangle anchored at the origin.
func InBounds(floor Dimensions, pos Position, dim Dimensions) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X+dim.Width <= floor.Width &&
		pos.Y+dim.Height <= floor.Height
}

// Distance returns the straight-line distance between two positions.
func Distance(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
