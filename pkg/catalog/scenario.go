package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
)

// Scenario is the on-disk description of one optimization run: the floor,
// its fixed obstacles and anchors, the rack mix to place, and the search
// policy knobs. Scenarios are TOML files; see examples/scenarios.
type Scenario struct {
	Name        string          `toml:"name"`
	Floor       FloorConfig     `toml:"floor"`
	Entrance    PointConfig     `toml:"entrance"`
	Dock        PointConfig     `toml:"dock"`
	Constraints []ObstacleEntry `toml:"constraint"`
	Racks       []RackMixEntry  `toml:"racks"`
	Optimizer   OptimizerConfig `toml:"optimizer"`
}

// FloorConfig holds the floor dimensions in meters.
type FloorConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PointConfig is a named anchor point on the floor.
type PointConfig struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// ObstacleEntry is one fixed exclusion zone.
type ObstacleEntry struct {
	Name   string  `toml:"name"`
	Kind   string  `toml:"kind"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// RackMixEntry requests count racks of one kind.
type RackMixEntry struct {
	Kind  string `toml:"kind"`
	Count int    `toml:"count"`
}

// OptimizerConfig carries the search policy knobs. Zero values select
// the reference defaults.
type OptimizerConfig struct {
	MinAisleWidth   float64 `toml:"min_aisle_width"`
	IdealAisleRatio float64 `toml:"ideal_aisle_ratio"`
	MaxIterations   int     `toml:"max_iterations"`
}

// LoadScenario reads and validates a scenario TOML file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Scenario{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read scenario %s", path)
		}
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read scenario %s", path)
	}
	return ParseScenario(data)
}

// ParseScenario decodes scenario TOML bytes and validates the result.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if s.Floor.Width <= 0 || s.Floor.Height <= 0 {
		return Scenario{}, errors.New(errors.ErrCodeInvalidScenario,
			"scenario floor must have positive dimensions, got %.2fx%.2f", s.Floor.Width, s.Floor.Height)
	}
	for _, r := range s.Racks {
		if _, err := ParseKind(r.Kind); err != nil {
			return Scenario{}, err
		}
		if r.Count < 0 {
			return Scenario{}, errors.New(errors.ErrCodeInvalidScenario,
				"rack mix count for %s must not be negative", r.Kind)
		}
	}
	for _, c := range s.Constraints {
		if _, err := ParseConstraintKind(c.Kind); err != nil {
			return Scenario{}, err
		}
	}
	return s, nil
}

// Layout builds the immutable layout described by the scenario.
func (s Scenario) Layout() Layout {
	constraints := make([]Constraint, len(s.Constraints))
	for i, c := range s.Constraints {
		kind, _ := ParseConstraintKind(c.Kind) // validated at load
		constraints[i] = Constraint{
			Name: c.Name,
			Kind: kind,
			Pos:  geometry.Position{X: c.X, Y: c.Y},
			Dims: geometry.Dimensions{Width: c.Width, Height: c.Height},
		}
	}
	return Layout{
		Floor:       geometry.Dimensions{Width: s.Floor.Width, Height: s.Floor.Height},
		Constraints: constraints,
		Entrance:    geometry.Position{X: s.Entrance.X, Y: s.Entrance.Y},
		Dock:        geometry.Position{X: s.Dock.X, Y: s.Dock.Y},
	}
}

// BuildRacks expands the rack mix into concrete racks using the catalog,
// in mix order.
func (s Scenario) BuildRacks(c Catalog) ([]Rack, error) {
	var racks []Rack
	for _, entry := range s.Racks {
		kind, err := ParseKind(entry.Kind)
		if err != nil {
			return nil, err
		}
		batch, err := c.NewRacks(entry.Count, kind)
		if err != nil {
			return nil, err
		}
		racks = append(racks, batch...)
	}
	return racks, nil
}

// SampleScenario returns the reference scenario matching SampleLayout
// with the canonical mixed rack configuration.
func SampleScenario() Scenario {
	return Scenario{
		Name:     "darkstore-reference",
		Floor:    FloorConfig{Width: 20, Height: 30},
		Entrance: PointConfig{X: 19, Y: 1},
		Dock:     PointConfig{X: 1, Y: 29},
		Constraints: []ObstacleEntry{
			{Name: "office", Kind: "office", X: 0, Y: 0, Width: 4, Height: 4},
			{Name: "exit", Kind: "exit", X: 18, Y: 0, Width: 2, Height: 2},
			{Name: "utility", Kind: "utility", X: 0, Y: 26, Width: 3, Height: 4},
			{Name: "pillar1", Kind: "pillar", X: 10, Y: 15, Width: 0.5, Height: 0.5},
		},
		Racks: []RackMixEntry{
			{Kind: "standard", Count: 15},
			{Kind: "high_density", Count: 8},
			{Kind: "freezer", Count: 4},
			{Kind: "bulk", Count: 3},
		},
	}
}
