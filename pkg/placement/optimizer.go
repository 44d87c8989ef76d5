// Package placement implements the grid-based greedy search that assigns
// floor positions to racks.
//
// The search derives one candidate grid from the Standard archetype,
// walks the racks in caller order, and greedily commits each rack to the
// valid cell with the best quick score. A full pass over all racks is one
// attempt; the engine runs a bounded number of attempts and keeps the
// best fully-scored result.
//
// The reference behavior introduces no variation between attempts, so
// every attempt over the same input produces the same result. The loop is
// kept anyway as the seam where seeded perturbation would slot in; the
// deterministic baseline is part of the contract and is covered by tests.
package placement

import (
	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/scoring"
)

const (
	// DefaultMaxIterations is the outer-attempt cap a caller gets when
	// passing zero.
	DefaultMaxIterations = 1000

	// hardAttemptCap bounds outer attempts regardless of caller input.
	hardAttemptCap = 100
)

// Optimizer runs placement searches. Construct with New; the zero value
// has no catalog and will fail to derive a grid.
type Optimizer struct {
	catalog  catalog.Catalog
	scorer   scoring.Engine
	minAisle float64
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithCatalog substitutes the archetype table used to derive the
// candidate grid.
func WithCatalog(c catalog.Catalog) Option {
	return func(o *Optimizer) { o.catalog = c }
}

// WithScoring substitutes the scoring engine used for both the quick
// per-rack score and the full attempt score.
func WithScoring(e scoring.Engine) Option {
	return func(o *Optimizer) { o.scorer = e }
}

// WithMinAisleWidth overrides the minimum clearance between racks.
func WithMinAisleWidth(w float64) Option {
	return func(o *Optimizer) { o.minAisle = w }
}

// New creates an optimizer with the default catalog, scoring engine, and
// aisle width unless overridden.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		catalog:  catalog.Default(),
		scorer:   scoring.NewEngine(),
		minAisle: DefaultMinAisleWidth,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MinAisleWidth returns the clearance the optimizer enforces.
func (o *Optimizer) MinAisleWidth() float64 { return o.minAisle }

// Optimize searches for the best placement of racks within layout and
// returns the scored result. The input slice is never modified; placed
// racks come back as fresh Placement records, and racks that fit nowhere
// are simply absent from the result.
//
// maxIterations caps the outer attempts; zero or negative selects
// DefaultMaxIterations, and the cap never exceeds 100. An empty solution
// (zero racks, zero score) is returned when nothing can be placed; the
// only error is a malformed layout.
func (o *Optimizer) Optimize(layout catalog.Layout, racks []catalog.Rack, maxIterations int) (plan.Solution, error) {
	if err := layout.Validate(); err != nil {
		return plan.Solution{}, err
	}

	std, ok := o.catalog.Spec(catalog.KindStandard)
	if !ok {
		return plan.Solution{}, errors.New(errors.ErrCodeInvalidKind, "catalog has no standard archetype to derive the grid from")
	}

	// The grid dimensions come from the Standard archetype regardless of
	// what is being placed; the candidate coordinates are rack-size
	// dependent (see candidateAt).
	gridX := int(layout.Floor.Width / (std.Dims.Width + o.minAisle))
	gridY := int(layout.Floor.Height / (std.Dims.Height + o.minAisle))

	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	attempts := min(maxIterations, hardAttemptCap)

	var best plan.Solution
	bestScore := 0.0
	found := false

	for attempt := 0; attempt < attempts; attempt++ {
		placed := o.runAttempt(layout, racks, gridX, gridY)
		if len(placed) == 0 {
			continue
		}
		sol := o.scorer.Score(placed, layout)
		// Strict greater: ties keep the earlier attempt.
		if sol.Score > bestScore {
			bestScore = sol.Score
			best = sol
			found = true
		}
	}

	if !found {
		return plan.Empty(), nil
	}
	return best, nil
}

// runAttempt performs one greedy pass over all racks, threading the
// placed set through as an explicit accumulator.
func (o *Optimizer) runAttempt(layout catalog.Layout, racks []catalog.Rack, gridX, gridY int) []plan.Placement {
	placed := make([]plan.Placement, 0, len(racks))

	for _, rack := range racks {
		pos, ok := o.bestCell(rack, layout, placed, gridX, gridY)
		if !ok {
			// Not an error: the rack stays unplaced for this attempt.
			continue
		}
		placed = append(placed, plan.Placement{Rack: rack, Pos: pos})
	}
	return placed
}

// bestCell scans every grid cell and returns the valid candidate with the
// highest quick score. Scan order is column-major and stable, and the
// comparison is strict, so equal-scoring candidates resolve to the first
// one encountered.
func (o *Optimizer) bestCell(rack catalog.Rack, layout catalog.Layout, placed []plan.Placement, gridX, gridY int) (geometry.Position, bool) {
	var bestPos geometry.Position
	bestScore := -1.0
	found := false

	for i := 0; i < gridX; i++ {
		for j := 0; j < gridY; j++ {
			pos := candidateAt(rack, i, j, o.minAisle)
			if !IsValid(rack, pos, layout, placed, o.minAisle) {
				continue
			}
			candidate := append(placed[:len(placed):len(placed)], plan.Placement{Rack: rack, Pos: pos})
			score := o.scorer.Quick(candidate, layout)
			if score > bestScore {
				bestScore = score
				bestPos = pos
				found = true
			}
		}
	}
	return bestPos, found
}

// candidateAt maps a grid cell to floor coordinates using the rack's own
// footprint plus the aisle width as the stride.
func candidateAt(rack catalog.Rack, i, j int, minAisle float64) geometry.Position {
	return geometry.Position{
		X: float64(i) * (rack.Dims.Width + minAisle),
		Y: float64(j) * (rack.Dims.Height + minAisle),
	}
}
