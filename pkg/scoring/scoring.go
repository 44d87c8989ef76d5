// Package scoring computes quality metrics for a set of placed racks.
//
// Five independent metrics are produced: area efficiency, accessibility,
// workflow regularity, density, and aisle-ratio efficiency. Four of them
// combine into the weighted composite score in [0,100]; aisle efficiency
// is reported in the metrics block but deliberately excluded from the
// composite. That asymmetry between reported and scored dimensions is
// part of the contract, not an oversight.
//
// Every metric defines its own zero-default for degenerate input (no
// racks, zero bounding box) instead of dividing by zero.
package scoring

import (
	"math"
	"sort"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

// Default policy constants for the reference configuration.
const (
	// DefaultIdealAisleRatio is the industry rule-of-thumb fraction of
	// floor area left as aisles.
	DefaultIdealAisleRatio = 0.35
)

// Weights holds the composite-score weights for the four scored
// dimensions. They sum to 1 in the reference configuration.
type Weights struct {
	Efficiency    float64
	Accessibility float64
	Workflow      float64
	Density       float64
}

// DefaultWeights returns the reference weighting: 30% area efficiency,
// 25% accessibility, 25% workflow regularity, 20% density.
func DefaultWeights() Weights {
	return Weights{Efficiency: 0.30, Accessibility: 0.25, Workflow: 0.25, Density: 0.20}
}

// Engine scores complete (possibly partial) placements. The zero value
// is not usable; construct with NewEngine.
type Engine struct {
	weights         Weights
	idealAisleRatio float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the composite-score weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithIdealAisleRatio overrides the target aisle fraction used by the
// aisle-efficiency metric.
func WithIdealAisleRatio(r float64) Option {
	return func(e *Engine) { e.idealAisleRatio = r }
}

// NewEngine creates a scoring engine with the reference configuration
// unless overridden by options.
func NewEngine(opts ...Option) Engine {
	e := Engine{
		weights:         DefaultWeights(),
		idealAisleRatio: DefaultIdealAisleRatio,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Score computes the full five-metric evaluation of the placed racks and
// assembles the solution artifact. It is exposed standalone so external
// collaborators can re-score an edited placement without re-running the
// search.
func (e Engine) Score(placements []plan.Placement, layout catalog.Layout) plan.Solution {
	efficiency := LayoutEfficiency(placements, layout)
	accessibility := e.accessibility(placements, layout)
	workflow := e.workflow(placements)
	density := e.density(placements)

	score := (efficiency*e.weights.Efficiency +
		accessibility*e.weights.Accessibility +
		workflow*e.weights.Workflow +
		density*e.weights.Density) * 100

	sol := plan.Solution{
		Placements:       placements,
		Score:            score,
		LayoutEfficiency: efficiency,
		Accessibility:    accessibility,
		Workflow:         workflow,
		Metrics: plan.Metrics{
			TotalRacks:            len(placements),
			TotalCapacity:         totalCapacity(placements),
			AreaUtilization:       efficiency,
			Accessibility:         accessibility,
			WorkflowRegularity:    workflow,
			Density:               density,
			AisleEfficiency:       e.aisleEfficiency(placements, layout),
			AvgDistanceToEntrance: avgDistance(placements, layout.Entrance),
			AvgDistanceToDock:     avgDistance(placements, layout.Dock),
		},
	}
	return sol
}

// Quick computes the cheap two-term score used inside the per-rack greedy
// loop: 60% partial-set area efficiency plus 40% entrance-only
// accessibility, scaled to [0,100]. It is never used for final ranking.
func (e Engine) Quick(placements []plan.Placement, layout catalog.Layout) float64 {
	if len(placements) == 0 {
		return 0
	}
	efficiency := LayoutEfficiency(placements, layout)
	avg := avgDistance(placements, layout.Entrance)
	accessibility := 1 - avg/layout.MaxDiagonal()
	return (efficiency*0.6 + accessibility*0.4) * 100
}

// LayoutEfficiency is the summed rack footprint divided by the floor
// area. The validity checks keep it at or below 1 for any searched
// placement.
func LayoutEfficiency(placements []plan.Placement, layout catalog.Layout) float64 {
	area := layout.Floor.Area()
	if area == 0 {
		return 0
	}
	return totalRackArea(placements) / area
}

// accessibility averages two normalized proximity scores, one against the
// entrance and one against the loading dock. Distances run from each
// rack's origin (not its center) to the anchor.
func (e Engine) accessibility(placements []plan.Placement, layout catalog.Layout) float64 {
	if len(placements) == 0 {
		return 0
	}
	maxDist := layout.MaxDiagonal()
	entranceScore := 1 - avgDistance(placements, layout.Entrance)/maxDist
	dockScore := 1 - avgDistance(placements, layout.Dock)/maxDist
	return (entranceScore + dockScore) / 2
}

// workflow measures grid regularity: the variance of consecutive gaps
// among the distinct x and y origin coordinates, folded into
// 1/(1+varX+varY). Tight, even spacing scores near 1.
//
// Degenerate defaults: fewer than two placed racks scores 1.0; a single
// distinct coordinate on either axis scores 0. A Placement always
// carries a position, so the historical "racks without positions"
// half-credit case cannot arise here.
func (e Engine) workflow(placements []plan.Placement) float64 {
	if len(placements) < 2 {
		return 1.0
	}

	xs := distinctSorted(placements, func(p plan.Placement) float64 { return p.Pos.X })
	ys := distinctSorted(placements, func(p plan.Placement) float64 { return p.Pos.Y })

	if len(xs) > 1 && len(ys) > 1 {
		score := 1.0 / (1.0 + spacingVariance(xs) + spacingVariance(ys))
		return math.Min(score, 1.0)
	}
	return 0
}

// density is the summed rack footprint divided by the area of the
// minimal bounding box enclosing all placed rectangles.
func (e Engine) density(placements []plan.Placement) float64 {
	if len(placements) == 0 {
		return 0
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range placements {
		minX = math.Min(minX, p.Pos.X)
		minY = math.Min(minY, p.Pos.Y)
		maxX = math.Max(maxX, p.Pos.X+p.Rack.Dims.Width)
		maxY = math.Max(maxY, p.Pos.Y+p.Rack.Dims.Height)
	}

	used := (maxX - minX) * (maxY - minY)
	if used == 0 {
		return 0
	}
	return totalRackArea(placements) / used
}

// aisleEfficiency scores how close the actual aisle fraction of the floor
// comes to the ideal ratio, clamped at zero.
func (e Engine) aisleEfficiency(placements []plan.Placement, layout catalog.Layout) float64 {
	if len(placements) == 0 {
		return 0
	}
	total := layout.Floor.Area()
	if total == 0 {
		return 0
	}
	actual := (total - totalRackArea(placements)) / total
	efficiency := 1 - math.Abs(actual-e.idealAisleRatio)/e.idealAisleRatio
	return math.Max(0, efficiency)
}

func totalRackArea(placements []plan.Placement) float64 {
	var sum float64
	for _, p := range placements {
		sum += p.FootprintArea()
	}
	return sum
}

func totalCapacity(placements []plan.Placement) int {
	total := 0
	for _, p := range placements {
		total += p.Rack.Capacity
	}
	return total
}

func avgDistance(placements []plan.Placement, anchor geometry.Position) float64 {
	if len(placements) == 0 {
		return 0
	}
	var sum float64
	for _, p := range placements {
		sum += geometry.Distance(p.Pos, anchor)
	}
	return sum / float64(len(placements))
}

// distinctSorted extracts the distinct values of one coordinate axis in
// ascending order.
func distinctSorted(placements []plan.Placement, coord func(plan.Placement) float64) []float64 {
	seen := make(map[float64]struct{}, len(placements))
	out := make([]float64, 0, len(placements))
	for _, p := range placements {
		v := coord(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// spacingVariance returns the population variance of the gaps between
// consecutive coordinates. Fewer than two coordinates yields zero.
func spacingVariance(coords []float64) float64 {
	if len(coords) < 2 {
		return 0
	}
	gaps := make([]float64, len(coords)-1)
	var mean float64
	for i := 1; i < len(coords); i++ {
		gaps[i-1] = coords[i] - coords[i-1]
		mean += gaps[i-1]
	}
	mean /= float64(len(gaps))

	var variance float64
	for _, g := range gaps {
		d := g - mean
		variance += d * d
	}
	return variance / float64(len(gaps))
}
