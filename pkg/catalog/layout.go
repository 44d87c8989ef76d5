package catalog

import (
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
)

// ConstraintKind classifies a fixed obstacle on the floor.
type ConstraintKind int

const (
	ConstraintOffice ConstraintKind = iota
	ConstraintExit
	ConstraintUtility
	ConstraintPillar
)

var constraintNames = [...]string{
	ConstraintOffice:  "office",
	ConstraintExit:    "exit",
	ConstraintUtility: "utility",
	ConstraintPillar:  "pillar",
}

// String returns the wire name of the constraint kind.
func (k ConstraintKind) String() string {
	if int(k) < 0 || int(k) >= len(constraintNames) {
		return "unknown"
	}
	return constraintNames[k]
}

// ParseConstraintKind resolves a wire name back to a ConstraintKind.
func ParseConstraintKind(s string) (ConstraintKind, error) {
	for i, name := range constraintNames {
		if name == s {
			return ConstraintKind(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind, "unknown constraint kind: %q", s)
}

// Constraint is a named fixed exclusion zone. It is immutable for the
// lifetime of a layout; the search engine only ever overlap-tests it.
type Constraint struct {
	Name string
	Kind ConstraintKind
	Pos  geometry.Position
	Dims geometry.Dimensions
}

// Layout is the floor plan: dimensions, obstacles, and the entrance and
// loading-dock anchor points. It is an immutable input to every search.
type Layout struct {
	Floor       geometry.Dimensions
	Constraints []Constraint
	Entrance    geometry.Position
	Dock        geometry.Position
}

// Validate rejects degenerate floor dimensions. This is the only hard
// failure the core defines: every other awkward input degrades to an
// empty or partial solution instead.
func (l Layout) Validate() error {
	if l.Floor.Width <= 0 || l.Floor.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout,
			"floor dimensions must be positive, got %.2fx%.2f", l.Floor.Width, l.Floor.Height)
	}
	return nil
}

// MaxDiagonal returns the floor diagonal, the largest possible distance
// between two points on the floor. Used to normalize proximity scores.
func (l Layout) MaxDiagonal() float64 {
	return geometry.Distance(geometry.Position{}, geometry.Position{X: l.Floor.Width, Y: l.Floor.Height})
}

// SampleLayout returns the canonical 20x30m dark-store fixture: four
// named obstacles, entrance near the south-east corner, loading dock
// near the north-west corner. Tests and examples lean on it.
func SampleLayout() Layout {
	return Layout{
		Floor: geometry.Dimensions{Width: 20, Height: 30},
		Constraints: []Constraint{
			{Name: "office", Kind: ConstraintOffice, Pos: geometry.Position{X: 0, Y: 0}, Dims: geometry.Dimensions{Width: 4, Height: 4}},
			{Name: "exit", Kind: ConstraintExit, Pos: geometry.Position{X: 18, Y: 0}, Dims: geometry.Dimensions{Width: 2, Height: 2}},
			{Name: "utility", Kind: ConstraintUtility, Pos: geometry.Position{X: 0, Y: 26}, Dims: geometry.Dimensions{Width: 3, Height: 4}},
			{Name: "pillar1", Kind: ConstraintPillar, Pos: geometry.Position{X: 10, Y: 15}, Dims: geometry.Dimensions{Width: 0.5, Height: 0.5}},
		},
		Entrance: geometry.Position{X: 19, Y: 1},
		Dock:     geometry.Position{X: 1, Y: 29},
	}
}
